package storage

import (
	"fmt"
	"time"
)

// SeedDemoData loads the fixed demonstration data set through the store's
// own operations, so it behaves identically on every backend: two users,
// three workspaces, five tasks (four scheduled today, one tomorrow), their
// assignees, two attachments, one voice note and two comments.
func SeedDemoData(s Store) error {
	sarah, err := s.CreateUser(CreateUserInput{
		Username:  "sarahchen",
		Password:  "password123",
		FullName:  "Sarah Chen",
		Email:     "sarah@workflow.com",
		AvatarURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=64&h=64&q=80",
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	michael, err := s.CreateUser(CreateUserInput{
		Username:  "michaeltaylor",
		Password:  "password123",
		FullName:  "Michael Taylor",
		Email:     "michael@workflow.com",
		AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=64&h=64&q=80",
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	marketing, err := s.CreateWorkspace(CreateWorkspaceInput{Name: "Marketing", Color: "#0073ea"})
	if err != nil {
		return fmt.Errorf("seed workspace: %w", err)
	}
	development, err := s.CreateWorkspace(CreateWorkspaceInput{Name: "Development", Color: "#00c875"})
	if err != nil {
		return fmt.Errorf("seed workspace: %w", err)
	}
	sales, err := s.CreateWorkspace(CreateWorkspaceInput{Name: "Sales", Color: "#fdab3d"})
	if err != nil {
		return fmt.Errorf("seed workspace: %w", err)
	}

	now := time.Now()
	at := func(day time.Time, hour, min int) *time.Time {
		t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
		return &t
	}
	tomorrow := now.AddDate(0, 0, 1)

	type seedTask struct {
		input     CreateTaskInput
		assignees []uint64
	}
	seedTasks := []seedTask{
		{
			input: CreateTaskInput{
				Title:       "Client meeting for website redesign",
				Description: "Review the website redesign proposal with the client team. Prepare mockups and technical specification documents.",
				Status:      "in-progress",
				Priority:    "high",
				StartDate:   at(now, 14, 0),
				EndDate:     at(now, 15, 30),
				WorkspaceID: marketing.ID,
				CreatedByID: sarah.ID,
				TotalBudget: 2500,
				PaidAmount:  1500,
			},
			assignees: []uint64{sarah.ID, michael.ID},
		},
		{
			input: CreateTaskInput{
				Title:       "Prepare Q4 budget proposal",
				Description: "Compile financial data and prepare budget proposal for Q4.",
				Status:      "in-progress",
				Priority:    "medium",
				StartDate:   at(now, 9, 0),
				EndDate:     at(now, 12, 0),
				WorkspaceID: sales.ID,
				CreatedByID: sarah.ID,
				TotalBudget: 1000,
			},
			assignees: []uint64{sarah.ID},
		},
		{
			input: CreateTaskInput{
				Title:       "Team stand-up meeting",
				Description: "Daily team stand-up to discuss progress and roadblocks.",
				Status:      "in-progress",
				Priority:    "medium",
				StartDate:   at(now, 16, 30),
				EndDate:     at(now, 17, 0),
				WorkspaceID: development.ID,
				CreatedByID: michael.ID,
			},
			assignees: []uint64{sarah.ID, michael.ID},
		},
		{
			input: CreateTaskInput{
				Title:       "Submit client contract for review",
				Description: "Finalize and submit client contract to legal team for review.",
				Status:      "in-progress",
				Priority:    "high",
				StartDate:   at(now, 11, 0),
				EndDate:     at(now, 11, 30),
				WorkspaceID: sales.ID,
				CreatedByID: michael.ID,
				TotalBudget: 500,
			},
			assignees: []uint64{michael.ID, sarah.ID},
		},
		{
			input: CreateTaskInput{
				Title:       "Product roadmap review",
				Description: "Review product roadmap and prioritize features for next release.",
				Status:      "to-do",
				Priority:    "high",
				StartDate:   at(tomorrow, 9, 0),
				EndDate:     at(tomorrow, 10, 30),
				WorkspaceID: development.ID,
				CreatedByID: sarah.ID,
			},
			assignees: []uint64{sarah.ID, michael.ID},
		},
	}

	var firstTask uint64
	for i, st := range seedTasks {
		task, err := s.CreateTask(st.input)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", st.input.Title, err)
		}
		if i == 0 {
			firstTask = task.ID
		}
		for _, userID := range st.assignees {
			if _, err := s.AssignUserToTask(task.ID, userID); err != nil {
				return fmt.Errorf("seed assignee on %q: %w", st.input.Title, err)
			}
		}
	}

	attachments := []CreateTaskAttachmentInput{
		{
			TaskID:       firstTask,
			FileName:     "redesign_proposal_v2.pdf",
			FileType:     "application/pdf",
			FileSize:     4200000,
			FileURL:      "/uploads/redesign_proposal_v2.pdf",
			UploadedByID: sarah.ID,
		},
		{
			TaskID:       firstTask,
			FileName:     "mockup_homepage.png",
			FileType:     "image/png",
			FileSize:     2800000,
			FileURL:      "/uploads/mockup_homepage.png",
			UploadedByID: michael.ID,
		},
	}
	for _, a := range attachments {
		if _, err := s.AddTaskAttachment(a); err != nil {
			return fmt.Errorf("seed attachment %q: %w", a.FileName, err)
		}
	}

	if _, err := s.AddVoiceNote(CreateVoiceNoteInput{
		TaskID:       firstTask,
		FileName:     "initial_client_feedback.mp3",
		FileSize:     720000,
		Duration:     45,
		FileURL:      "/uploads/initial_client_feedback.mp3",
		RecordedByID: sarah.ID,
	}); err != nil {
		return fmt.Errorf("seed voice note: %w", err)
	}

	comments := []CreateCommentInput{
		{
			TaskID:  firstTask,
			UserID:  sarah.ID,
			Content: "I've prepared all the mockups. Let's review them once more before the meeting.",
		},
		{
			TaskID:  firstTask,
			UserID:  michael.ID,
			Content: "The client mentioned they want to see more vibrant color options. I've updated the palette in the document.",
		},
	}
	for _, cm := range comments {
		if _, err := s.AddComment(cm); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}

	return nil
}
