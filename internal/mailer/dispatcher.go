package mailer

import "log"

type Notification struct {
	Subject string
	Body    string
}

// Dispatcher sends notifications off the request path. A send failure is
// logged and dropped; it must never fail or roll back the record that
// triggered it.
type Dispatcher struct {
	sender Sender
	to     string
	queue  chan Notification
}

func NewDispatcher(sender Sender, to string) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		to:     to,
		queue:  make(chan Notification, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		if err := d.sender.Send(d.to, n.Subject, n.Body); err != nil {
			log.Println("notification send failed:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(n Notification) {
	select {
	case d.queue <- n:
	default:
		log.Println("notification queue full, dropping email")
	}
}
