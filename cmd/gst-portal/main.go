package main

import "github.com/nfrund/gstportal/cmd/gst-portal/cmd"

func main() {
	cmd.Execute()
}
