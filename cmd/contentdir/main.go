// Command contentdir rewrites the ContentDir registry value of installed
// products so it points at their "X Library" folder.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/nicontent/nicontent/internal/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.NewContentDirCmd()); err != nil {
		os.Exit(1)
	}
}
