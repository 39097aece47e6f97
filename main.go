package main

import (
	"context"
	"flag"
	"runtime"

	"github.com/golang/glog"
)

var (
	rootPath         string
	resourceFilePath string
	writeMeta        bool
	parallelism      int
)

func parseFlags() {
	flag.StringVar(&rootPath, "root", ".",
		"Path to the directory holding a <set>/grid.png for every character set.")
	flag.StringVar(&resourceFilePath, "res", "",
		"Resource file to also pack the frames into. Disabled if empty.")
	flag.BoolVar(&writeMeta, "meta", true,
		"Write an animations-meta.yml next to the frames of each set.")
	flag.IntVar(&parallelism, "j", runtime.NumCPU(),
		"Number of character sets to slice at once.")

	flag.Parse()
}

func main() {
	parseFlags()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	slicer := NewSlicer(rootPath)
	slicer.WriteMeta = writeMeta
	slicer.Parallelism = parallelism

	// Open the resource file.
	if resourceFilePath != "" {
		resourceFile, err := OpenResourceFile(resourceFilePath)
		handleError(err)
		defer resourceFile.Close()

		slicer.Resource = resourceFile
	}

	err := slicer.Run(context.Background())
	handleError(err)
}

func handleError(err error) {
	if err != nil {
		glog.Exitf("%v", err)
	}
}
