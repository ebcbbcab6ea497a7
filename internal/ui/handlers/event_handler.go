package handlers

import (
	"github.com/rs/zerolog"

	"arttable/internal/eventbus"
	"arttable/internal/logging"
	"arttable/internal/metrics"
)

// EventHandler turns domain events into log lines and metric updates
type EventHandler struct {
	logger zerolog.Logger
	unsubs []func()
}

// NewEventHandler subscribes a handler to every event type on bus
func NewEventHandler(bus eventbus.EventBus) *EventHandler {
	h := &EventHandler{logger: logging.NewLogger("events")}
	if bus == nil {
		return h
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventPageRequested,
		eventbus.EventPageLoaded,
		eventbus.EventPageFailed,
		eventbus.EventStaleResponse,
		eventbus.EventSelectionChanged,
		eventbus.EventDialogOpened,
		eventbus.EventDialogClosed,
	} {
		h.unsubs = append(h.unsubs, bus.Subscribe(t, h.HandleEvent))
	}
	return h
}

// HandleEvent processes one domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.PageRequestedEvent:
		h.logger.Debug().Uint64("seq", e.Seq).Int("page", e.Page).Int("limit", e.Limit).Msg("page requested")

	case eventbus.PageLoadedEvent:
		h.logger.Info().Uint64("seq", e.Seq).Int("page", e.Page).Int("count", e.Count).Int("total", e.TotalCount).Msg("page loaded")

	case eventbus.PageFailedEvent:
		h.logger.Warn().Uint64("seq", e.Seq).Int("page", e.Page).Err(e.Err).Msg("page failed")

	case eventbus.StaleResponseEvent:
		metrics.StaleResponsesTotal.Inc()
		h.logger.Debug().Uint64("seq", e.Seq).Uint64("latest", e.Latest).Msg("stale response dropped")

	case eventbus.SelectionChangedEvent:
		metrics.SelectedRecords.Set(float64(e.Total))
		h.logger.Debug().Ints("added", e.Added).Ints("removed", e.Removed).Int("total", e.Total).Msg("selection changed")

	case eventbus.DialogOpenedEvent:
		h.logger.Debug().Int("max", e.Max).Msg("row dialog opened")

	case eventbus.DialogClosedEvent:
		h.logger.Debug().Bool("submitted", e.Submitted).Int("count", e.Count).Msg("row dialog closed")
	}
}

// Close removes the subscriptions
func (h *EventHandler) Close() {
	for _, unsub := range h.unsubs {
		unsub()
	}
	h.unsubs = nil
}
