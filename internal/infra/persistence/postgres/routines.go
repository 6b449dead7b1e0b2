package postgres

import "strings"

// All reads and writes go through set-returning routines owned by the
// database. Each repository method binds its arguments positionally in the
// order the routine declares them.
const (
	spCreateGuestUser    = "sp_create_guest_user"
	spGetUserByID        = "sp_get_user_by_id"
	spGetUserSettings    = "sp_get_user_settings"
	spUpdateUserSettings = "sp_update_user_settings"

	spCreateTask           = "sp_create_task"
	spGetTasks             = "sp_get_tasks"
	spGetTaskByID          = "sp_get_task_by_id"
	spUpdateTask           = "sp_update_task"
	spToggleTaskCompletion = "sp_toggle_task_completion"
	spDeleteTask           = "sp_delete_task"

	spCreateBalloon          = "sp_create_balloon"
	spGetPublicBalloons      = "sp_get_public_balloons"
	spGetBalloonSelection    = "sp_get_balloon_selection"
	spSetBalloonSelection    = "sp_set_balloon_selection"
	spAddBalloonContribution = "sp_add_balloon_contribution"
)

// routineCall builds "SELECT * FROM name(?, ?, ...)" with argCount
// placeholders.
func routineCall(name string, argCount int) string {
	if argCount == 0 {
		return "SELECT * FROM " + name + "()"
	}

	placeholders := strings.Repeat("?, ", argCount)

	return "SELECT * FROM " + name + "(" + strings.TrimSuffix(placeholders, ", ") + ")"
}

// nullIfEmpty maps an empty string to SQL NULL so routines can apply their
// own defaults.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
