// Package helix provides the parametric double-helix model.
//
// The package defines the pieces every rendering surface shares:
//
//   - [Params]: the tunable values and their [Bounds]
//   - [Store]: parameter store with change notification
//   - [Build]: pure geometry builder (strand points and connectors)
//   - [Scene]: container holding the primitives of the current build
//   - [Spinner]: elapsed-time rotation driven by the render loop
//
// # Example
//
//	store := helix.NewStore(helix.DefaultParams(), helix.DefaultBounds())
//	scene := helix.NewScene()
//	scene.Bind(store)
//	spin := helix.NewSpinner(time.Now)
//	for frame := range frames {
//		spin.Tick(scene, store.Params().RotationSpeed)
//		draw(scene)
//	}
//
// # Thread Safety
//
// Store and Scene are NOT thread-safe. Both are owned by the render loop;
// other goroutines hand parameter updates to the loop over a channel.
package helix
