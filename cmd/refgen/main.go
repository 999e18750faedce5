// Command refgen writes and checks reference fixture files for the refrng
// generator family.
package main

func main() {
	Execute()
}
