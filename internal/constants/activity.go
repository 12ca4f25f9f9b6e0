package constants

import "strings"

type ActivityStatus string

const (
	StatusCreated    ActivityStatus = "Created"
	StatusInProgress ActivityStatus = "InProgress"
	StatusCompleted  ActivityStatus = "Completed"
)

// FilterAll is the query value meaning "no filter" for enum dimensions.
const FilterAll = "all"

func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ParseActivityStatus(v string) (ActivityStatus, bool) {
	s := ActivityStatus(strings.TrimSpace(v))
	return s, s.Valid()
}

func ActivityStatuses() []ActivityStatus {
	return []ActivityStatus{StatusCreated, StatusInProgress, StatusCompleted}
}

type ActivityType string

const (
	TypeProjectTask   ActivityType = "ProjectTask"
	TypeRoutineWork   ActivityType = "RoutineWork"
	TypeAttendMeeting ActivityType = "AttendMeeting"
	TypeOther         ActivityType = "Other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case TypeProjectTask, TypeRoutineWork, TypeAttendMeeting, TypeOther:
		return true
	}
	return false
}

func ParseActivityType(v string) (ActivityType, bool) {
	t := ActivityType(strings.TrimSpace(v))
	return t, t.Valid()
}

func ActivityTypes() []ActivityType {
	return []ActivityType{TypeProjectTask, TypeRoutineWork, TypeAttendMeeting, TypeOther}
}
