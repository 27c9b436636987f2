package content

import "fmt"

type (
	// Listing is one item of a directory listing.
	Listing struct {
		Name  string
		Path  string
		IsDir bool
	}

	// Lister lists the direct children of a directory in listing order.
	Lister interface {
		ListEntries(root string) ([]Listing, error)
	}
)

// Load builds a Library from the directories directly under root. Plain
// files are ignored.
func Load(lister Lister, root string) (*Library, error) {
	listing, err := lister.ListEntries(root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}
	lib := NewLibrary(root)
	for _, item := range listing {
		if !item.IsDir {
			continue
		}
		lib.Add(item.Name, item.Path)
	}
	return lib, nil
}
