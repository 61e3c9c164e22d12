package greenthread

import "github.com/greenthread-go/greenthread/internal/tcb"

// Yield hands control back to the executor and asks to be polled
// again as soon as possible, by waking the current waker before
// switching out. Use it between units of work that do not have an
// external event to park on but should still let the executor service
// other futures in between.
func Yield() {
	b := tcb.Current()
	if w := b.Waker; w != nil {
		w.Wake()
	}
	b.SwitchOut()
	mustCheckCanary(b)
}

func mustCheckCanary(b *tcb.Block) {
	if err := b.CheckCanary(); err != nil {
		panic(err)
	}
}
