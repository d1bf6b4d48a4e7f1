package docsnap

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-docsnap/internal/fileutil"
)

// refPlaceholder is the literal token in the repository stylesheet that is
// replaced by the tail fragment of the snapshot ID.
const refPlaceholder = "{{ref-id}}"

// injectStylesheet copies the stylesheet from srcPath to dstPath, replacing
// every occurrence of the placeholder with the tail fragment of id.
// The source stylesheet is never modified.
func injectStylesheet(srcPath, dstPath, id string) error {
	content, err := os.ReadFile(srcPath) // #nosec G304 -- path derives from the CLI user's repo
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrStylesheetNotFound, srcPath)
		}
		return fmt.Errorf("reading stylesheet: %w", err)
	}

	stamped := strings.ReplaceAll(string(content), refPlaceholder, refTail(id))

	if err := os.WriteFile(dstPath, []byte(stamped), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("writing stylesheet copy: %w", err)
	}
	return nil
}
