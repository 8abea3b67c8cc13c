package notify

import "log"

// Notificação fire-and-forget: o core nunca espera a entrega.

type Event struct {
	Title string
	Body  string
}

type Notifier interface {
	Notify(title string, body string) error
}

// LogNotifier é a entrega padrão quando nenhum canal de push está ligado.
type LogNotifier struct{}

func (LogNotifier) Notify(title string, body string) error {
	log.Printf("notify: %s: %s", title, body)
	return nil
}

type Dispatcher struct {
	notifier Notifier
	queue    chan Event
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.Notify(ev.Title, ev.Body); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		log.Println("notify queue full, dropping event")
	}
}
