package main

import "github.com/dmitrijs2005/salesinsight/internal/salesctl"

func main() {
	salesctl.Execute()
}
