// Command spanforest clusters 3-D points read as "x,y,z" lines with
// Kruskal's algorithm and prints a single unsigned result.
//
//	spanforest bounded --cutoff 1000 points.txt
//	spanforest connect --combiner product-x < points.txt
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
