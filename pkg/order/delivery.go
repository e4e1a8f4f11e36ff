package order

import (
	"time"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// deliveryEventSpec holds the optional period of a requested delivery event.
type deliveryEventSpec struct {
	periodStart time.Time
	periodEnd   time.Time
}

// DeliveryEventOption configures a requested delivery supply chain event.
type DeliveryEventOption func(*deliveryEventSpec)

// WithDeliveryPeriod adds a requested delivery start/end period to the
// event. A zero start or end suppresses that boundary.
func WithDeliveryPeriod(start, end time.Time) DeliveryEventOption {
	return func(s *deliveryEventSpec) {
		s.periodStart = start
		s.periodEnd = end
	}
}

// writeDeliveryEvent replaces the requested delivery event under parent.
// A zero occurrence suppresses the point-in-time element.
func writeDeliveryEvent(parent *etree.Element, occurrence time.Time, opts []DeliveryEventOption) {
	if parent == nil {
		return
	}
	var spec deliveryEventSpec
	for _, opt := range opts {
		opt(&spec)
	}

	event := replaceChild(parent, "ram:RequestedDeliverySupplyChainEvent")
	if !occurrence.IsZero() {
		datatype.DateTime(event, "ram:OccurrenceDateTime", occurrence)
	}
	if !spec.periodStart.IsZero() || !spec.periodEnd.IsZero() {
		period := event.CreateElement("ram:OccurrenceSpecifiedPeriod")
		if !spec.periodStart.IsZero() {
			datatype.DateTime(period, "ram:StartDateTime", spec.periodStart)
		}
		if !spec.periodEnd.IsZero() {
			datatype.DateTime(period, "ram:EndDateTime", spec.periodEnd)
		}
	}
}

// SetDocumentRequestedDeliverySupplyChainEvent replaces the header-level
// requested delivery event: a point in time plus an optional period.
func (b *DocumentBuilder) SetDocumentRequestedDeliverySupplyChainEvent(occurrence time.Time, opts ...DeliveryEventOption) *DocumentBuilder {
	writeDeliveryEvent(b.headerDelivery(), occurrence, opts)
	return b
}
