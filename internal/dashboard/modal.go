package dashboard

import (
	"context"
	"errors"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
)

const (
	msgCopied     = "Story copied to clipboard!"
	msgCopyFailed = "Failed to copy to clipboard"
)

// ModalTarget is the part of the modal overlay a click landed on.
type ModalTarget int

const (
	ModalBackdrop ModalTarget = iota
	ModalContent
	ModalClose
)

var errNoClipboard = errors.New("no clipboard available")

// OpenStoryModal fills the modal with story and shows it.
func (c *Controller) OpenStoryModal(story api.Story) {
	d := view.NewDetail(story, c.opts.Locale, c.opts.Now())
	c.modal = &d
}

func (c *Controller) CloseStoryModal() {
	c.modal = nil
}

// Modal returns the modal content and whether the overlay is shown.
func (c *Controller) Modal() (view.Detail, bool) {
	if c.modal == nil {
		return view.Detail{}, false
	}
	return *c.modal, true
}

// ClickModal handles a click while the overlay is shown: the backdrop and the
// close control dismiss it, clicks inside the content do not.
func (c *Controller) ClickModal(target ModalTarget) {
	switch target {
	case ModalBackdrop, ModalClose:
		c.CloseStoryModal()
	}
}

type copyOutcome struct {
	err error
}

func (o copyOutcome) Err() error { return o.err }

func (o copyOutcome) apply(c *Controller) {
	if o.err != nil {
		c.log.Warn("clipboard write failed", "err", o.err)
		c.ShowError(msgCopyFailed)
		return
	}
	c.ShowToast(msgCopied)
}

// CopyStory returns a Task writing the open story's text to the clipboard, or
// nil when no story is open.
func (c *Controller) CopyStory() Task {
	if c.modal == nil {
		return nil
	}
	text := c.modal.Text
	cb := c.clipboard
	return func(ctx context.Context) Outcome {
		if cb == nil {
			return copyOutcome{err: errNoClipboard}
		}
		return copyOutcome{err: cb.WriteAll(text)}
	}
}
