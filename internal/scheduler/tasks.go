package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskGenerateAbout = "lifecycle:generate_about"

type GenerateAboutPayload struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
}

func NewGenerateAboutTask(payload GenerateAboutPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskGenerateAbout, data), nil
}

func ParseGenerateAboutPayload(task *asynq.Task) (GenerateAboutPayload, error) {
	var payload GenerateAboutPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return GenerateAboutPayload{}, err
	}
	return payload, nil
}
