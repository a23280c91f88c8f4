package ws

import (
	"encoding/json"
	"time"

	"jobboard/internal/domain/job"
)

const (
	EventJobSubmitted     = "job_submitted"
	EventJobStatusChanged = "job_status_changed"
	EventJobDeleted       = "job_deleted"
)

type JobEvent struct {
	Type           string `json:"type"`
	JobID          string `json:"job_id"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Status         string `json:"status,omitempty"`
	PreviousStatus string `json:"previous_status,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// Publisher broadcasts lifecycle events on the hub. A nil publisher or hub
// is a no-op so the lifecycle never has to care whether dashboards exist.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) PublishJobSubmitted(j job.Job) {
	p.publish(JobEvent{
		Type:        EventJobSubmitted,
		JobID:       j.ID.String(),
		JobTitle:    j.JobTitle,
		CompanyName: j.CompanyName,
		Status:      string(j.Status),
	})
}

func (p *Publisher) PublishJobStatusChanged(j job.Job, previous job.Status) {
	p.publish(JobEvent{
		Type:           EventJobStatusChanged,
		JobID:          j.ID.String(),
		JobTitle:       j.JobTitle,
		CompanyName:    j.CompanyName,
		Status:         string(j.Status),
		PreviousStatus: string(previous),
	})
}

func (p *Publisher) PublishJobDeleted(id string) {
	p.publish(JobEvent{
		Type:  EventJobDeleted,
		JobID: id,
	})
}

func (p *Publisher) publish(evt JobEvent) {
	if p == nil || p.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	p.hub.Broadcast(b)
}
