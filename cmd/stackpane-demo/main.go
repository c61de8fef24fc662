// Command stackpane-demo showcases capability-typed overlays on a
// Bubble Tea screen: toasts, a self-aware modal, a spinner overlay and a
// background event feed.
package main

func main() {
	Execute()
}
