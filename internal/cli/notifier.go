package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dompet/dompet/internal/service"
)

// Notifier writes mutation outcomes to the terminal, the CLI
// counterpart of a UI's toast notifications.
type Notifier struct {
	writer io.Writer
}

var _ service.Notifier = (*Notifier)(nil)

// NewNotifier creates a terminal notifier. A nil writer defaults to
// stdout.
func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = os.Stdout
	}
	return &Notifier{writer: w}
}

// Success implements service.Notifier.
func (n *Notifier) Success(title, detail string) {
	fmt.Fprintf(n.writer, "%s %s\n",
		SuccessStyle.Render("✓ "+title+":"), detail)
}

// Failure implements service.Notifier.
func (n *Notifier) Failure(title, detail string) {
	fmt.Fprintf(n.writer, "%s %s\n",
		ErrorStyle.Render("✗ "+title+":"), detail)
}
