package main

import "cornerstone_backend/internal/app"

func main() {
	app.Run()
}
