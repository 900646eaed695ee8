// Command gridroute loads tile-map scenarios and prints the cheapest route
// between their start and finish cells.
//
//	gridroute route maps/wall.yaml --diagonal=false
//	gridroute route maps/wall.yaml --watch
//	gridroute render maps/wall.yaml
package main

func main() {
	Execute()
}
