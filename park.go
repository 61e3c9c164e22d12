package greenthread

import "github.com/greenthread-go/greenthread/internal/tcb"

// Park hands control back to the executor without waking it. Call
// CurrentWaker first and arrange for something to call it once the
// condition this green thread is waiting on becomes true; otherwise
// the future never gets polled again.
func Park() {
	b := tcb.Current()
	b.SwitchOut()
	mustCheckCanary(b)
}
