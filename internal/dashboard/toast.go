package dashboard

import "time"

type ToastKind int

const (
	ToastError ToastKind = iota
	ToastSuccess
)

// Toast is a transient notification. Seq identifies it for expiry.
type Toast struct {
	Kind    ToastKind
	Message string
	Seq     uint64
	TTL     time.Duration
}

// ShowError replaces any visible toast with an error toast.
func (c *Controller) ShowError(message string) Toast {
	return c.show(ToastError, message, c.opts.ErrorTTL)
}

// ShowToast replaces any visible toast with a success toast.
func (c *Controller) ShowToast(message string) Toast {
	return c.show(ToastSuccess, message, c.opts.SuccessTTL)
}

func (c *Controller) show(kind ToastKind, message string, ttl time.Duration) Toast {
	c.toastSeq++
	c.toast = Toast{Kind: kind, Message: message, Seq: c.toastSeq, TTL: ttl}
	return c.toast
}

// Toast returns the visible toast, if any.
func (c *Controller) Toast() (Toast, bool) {
	return c.toast, c.toast.Seq != 0
}

// ExpireToast hides the toast with the given sequence number. A toast that has
// since been replaced is left alone.
func (c *Controller) ExpireToast(seq uint64) bool {
	if seq == 0 || c.toast.Seq != seq {
		return false
	}
	c.toast = Toast{}
	return true
}
