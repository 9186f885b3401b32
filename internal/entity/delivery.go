package entity

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	// StatusSkipped is only ever an aggregate status: nothing was configured.
	StatusSkipped Status = "skipped"
)

type Destination struct {
	Address string
	Channel Channel
}

// DeliveryOutcome is the result of exactly one dispatch attempt.
type DeliveryOutcome struct {
	Destination Destination
	Status      Status
	Detail      string
	MessageID   string
}

func Succeeded(dest Destination, messageID string) DeliveryOutcome {
	return DeliveryOutcome{Destination: dest, Status: StatusSuccess, Detail: "Success", MessageID: messageID}
}

func Warned(dest Destination, detail string) DeliveryOutcome {
	return DeliveryOutcome{Destination: dest, Status: StatusWarning, Detail: detail}
}

func Failed(dest Destination, detail string) DeliveryOutcome {
	return DeliveryOutcome{Destination: dest, Status: StatusError, Detail: detail}
}

func (o DeliveryOutcome) OK() bool {
	return o.Status == StatusSuccess
}

// AggregateResult merges the outcomes of one channel.
type AggregateResult struct {
	Status   Status
	Detail   string
	Outcomes []DeliveryOutcome
}

func (r AggregateResult) AnySucceeded() bool {
	for _, o := range r.Outcomes {
		if o.OK() {
			return true
		}
	}
	return false
}
