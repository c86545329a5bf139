package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmtabor/studyarc/internal/llm"
)

func TestDraftRoadmap_Success(t *testing.T) {
	client := &fakeClient{response: `{
		"roadmap": [
			{"week_number": 1, "focus_area": "Bonding", "tasks": ["Read chapter 1"], "effort_level": "medium"},
			{"week_number": 2, "focus_area": "Stereochemistry", "tasks": ["Model kit practice"], "effort_level": "high"}
		]
	}`}
	svc := NewRoadmapDrafter(client)

	roadmap, err := svc.DraftRoadmap(context.Background(), "Organic Chemistry", "Week 1: bonding...")
	require.NoError(t, err)
	require.Len(t, roadmap, 2)
	assert.Equal(t, 1, roadmap[0].WeekNumber)
	assert.Equal(t, "Bonding", roadmap[0].FocusArea)

	assert.Equal(t, llm.TaskRoadmapDraft, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Organic Chemistry")
	assert.Contains(t, client.lastReq.UserPrompt, "Week 1: bonding")
}

func TestDraftRoadmap_RequiresCourseName(t *testing.T) {
	svc := NewRoadmapDrafter(&fakeClient{})

	_, err := svc.DraftRoadmap(context.Background(), "  ", "syllabus")
	assert.Error(t, err)
}

func TestDraftRoadmap_EmptyRoadmapRejected(t *testing.T) {
	svc := NewRoadmapDrafter(&fakeClient{response: `{"roadmap": []}`})

	_, err := svc.DraftRoadmap(context.Background(), "Chem", "")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestDraftRoadmap_InvalidWeekRejected(t *testing.T) {
	svc := NewRoadmapDrafter(&fakeClient{response: `{
		"roadmap": [{"week_number": 0, "focus_area": "Prep"}]
	}`})

	_, err := svc.DraftRoadmap(context.Background(), "Chem", "")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
