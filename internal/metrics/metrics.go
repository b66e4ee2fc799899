package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AppointmentsCreated prometheus.Counter
	BookingConflicts    prometheus.Counter
	ContactsCreated     prometheus.Counter
	ChatLogsUpserted    prometheus.Counter
}

// New registers the counters on reg. Tests pass a fresh registry so each
// case gets its own counters.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AppointmentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kashtex_appointments_created_total",
			Help: "Total number of appointments booked",
		}),

		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "kashtex_booking_conflicts_total",
			Help: "Total number of booking attempts rejected for an occupied slot",
		}),

		ContactsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kashtex_contacts_created_total",
			Help: "Total number of contact form submissions",
		}),

		ChatLogsUpserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "kashtex_chat_logs_upserted_total",
			Help: "Total number of chat transcript writes",
		}),
	}
}
