// Package display shows a rendered figure in a blocking desktop window.
// It is wired only for interactive runs; headless callers never import
// its entry point through plotview's Show hook.
package display

import (
	"fmt"
	"os"
	"path/filepath"

	tk "modernc.org/tk9.0"
)

// Show opens the image at path in a window and blocks until the user
// dismisses it.
func Show(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read figure %s: %w", path, err)
	}

	img := tk.NewPhoto(tk.Data(data))
	tk.Pack(
		tk.Label(tk.Image(img)),
		tk.TExit(),
	)
	tk.App.WmTitle(filepath.Base(path))
	tk.App.Wait()
	return nil
}
