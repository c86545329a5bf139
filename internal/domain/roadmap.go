package domain

import "encoding/json"

// RoadmapEntry is one week of a generated study roadmap.
type RoadmapEntry struct {
	ID          string
	CourseID    string
	WeekNumber  int
	FocusArea   string
	Tasks       TaskList
	EffortLevel EffortLevel
}

// TaskList normalizes the loosely-typed task payloads produced by the
// extraction model. A task may arrive as a plain string, as {"task": ...}
// or as {"title": ...}; everything else is dropped during decode so the
// planner only ever sees plain strings.
type TaskList []string

func (t *TaskList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an array at all. Treat as no tasks rather than failing the
		// whole row; roadmap payloads come from model output.
		*t = nil
		return nil
	}

	out := make(TaskList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			Task  string `json:"task"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(item, &obj); err == nil {
			if v := CoalesceStr(obj.Task, obj.Title); v != "" {
				out = append(out, v)
			}
		}
	}
	*t = out
	return nil
}

func (t TaskList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t))
}
