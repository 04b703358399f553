package editor

import (
	"github.com/google/uuid"

	"github.com/javanhut/RavenEditor/src/panels"
)

// DemoScene is the scene shown until an engine provides one.
func DemoScene() *panels.StaticScene {
	transform := func(pos string) panels.Component {
		return panels.Component{Name: "Transform", Fields: []panels.Field{
			{Name: "Position", Value: pos},
			{Name: "Rotation", Value: "0 0 0"},
			{Name: "Scale", Value: "1 1 1"},
		}}
	}
	return panels.NewStaticScene("Demo",
		panels.Entity{ID: uuid.New(), Name: "World", Components: []panels.Component{transform("0 0 0")}},
		panels.Entity{ID: uuid.New(), Name: "Main Camera", Depth: 1, Components: []panels.Component{
			transform("0 2 -8"),
			{Name: "Camera", Fields: []panels.Field{
				{Name: "FOV", Value: "60"},
				{Name: "Near", Value: "0.1"},
				{Name: "Far", Value: "500"},
			}},
		}},
		panels.Entity{ID: uuid.New(), Name: "Sun", Depth: 1, Components: []panels.Component{
			transform("10 20 5"),
			{Name: "Light", Fields: []panels.Field{
				{Name: "Kind", Value: "directional"},
				{Name: "Intensity", Value: "1.2"},
			}},
		}},
		panels.Entity{ID: uuid.New(), Name: "Props", Depth: 1},
		panels.Entity{ID: uuid.New(), Name: "Crate", Depth: 2, Components: []panels.Component{
			transform("1 0 3"),
			{Name: "Mesh", Fields: []panels.Field{{Name: "Asset", Value: "meshes/crate.obj"}}},
		}},
		panels.Entity{ID: uuid.New(), Name: "Barrel", Depth: 2, Components: []panels.Component{
			transform("-2 0 4"),
			{Name: "Mesh", Fields: []panels.Field{{Name: "Asset", Value: "meshes/barrel.obj"}}},
		}},
	)
}
