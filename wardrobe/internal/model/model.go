package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

type Teacher struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	Role         Role   `json:"role" db:"role"`
	Active       bool   `json:"active" db:"active"`
}

type CreateTeacherRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"max=20"`
	Role     Role   `json:"role" validate:"omitempty,oneof=ADMIN TEACHER"`
}

type Group struct {
	ID                   int64  `json:"id" db:"id"`
	Name                 string `json:"name" db:"name"`
	ResponsibleTeacherID *int64 `json:"responsibleTeacherId,omitempty" db:"responsible_teacher_id"`
	Active               bool   `json:"active" db:"active"`
}

type CreateGroupRequest struct {
	Name                 string `json:"name" validate:"required,max=100"`
	ResponsibleTeacherID *int64 `json:"responsibleTeacherId" validate:"omitempty,gt=0"`
}

type Student struct {
	ID      int64  `json:"id" db:"id"`
	GroupID int64  `json:"groupId" db:"group_id"`
	Name    string `json:"name" db:"name"`
	Active  bool   `json:"active" db:"active"`
}

type CreateStudentRequest struct {
	GroupID int64  `json:"groupId" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=120"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type Condition string

const (
	ConditionActive      Condition = "ACTIVE"
	ConditionUnderReview Condition = "UNDER_REVIEW"
	ConditionRetired     Condition = "RETIRED"
)

// WardrobeItem quantities are read-only outside the loan transaction.
type WardrobeItem struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Type              string    `json:"type" db:"type"`
	Size              string    `json:"size" db:"size"`
	TotalQuantity     int       `json:"totalQuantity" db:"total_quantity"`
	AvailableQuantity int       `json:"availableQuantity" db:"available_quantity"`
	Condition         Condition `json:"condition" db:"condition"`
}

type CreateWardrobeItemRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Type          string `json:"type" validate:"max=50"`
	Size          string `json:"size" validate:"max=10"`
	TotalQuantity *int   `json:"totalQuantity" validate:"required,gte=0,lte=2147483647"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Teacher   `json:"user"`
}

type EventType string

const (
	EventLoanCreated      EventType = "LOAN_CREATED"
	EventReturnRegistered EventType = "RETURN_REGISTERED"
)

// LoanEvent is published after a loan operation commits.
type LoanEvent struct {
	ID         int64           `json:"-" db:"id"`
	EventUID   string          `json:"eventUid" db:"event_uid"`
	LoanID     int64           `json:"loanId" db:"loan_id"`
	Type       EventType       `json:"type" db:"event_type"`
	TeacherID  int64           `json:"teacherId" db:"teacher_id"`
	Status     Status          `json:"status" db:"status"`
	Payload    json.RawMessage `json:"payload" db:"payload"`
	OccurredAt time.Time       `json:"occurredAt" db:"occurred_at"`
}

type OutstandingByStudent struct {
	GroupID            int64      `json:"groupId" db:"group_id"`
	GroupName          string     `json:"group" db:"group_name"`
	StudentID          int64      `json:"studentId" db:"student_id"`
	StudentName        string     `json:"student" db:"student_name"`
	LoanID             int64      `json:"loanId" db:"loan_id"`
	Status             Status     `json:"status" db:"status"`
	IssuedAt           time.Time  `json:"issuedAt" db:"issued_at"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty" db:"expected_return_date"`
	WardrobeItemID     int64      `json:"wardrobeItemId" db:"wardrobe_item_id"`
	WardrobeItemName   string     `json:"wardrobeItem" db:"wardrobe_item_name"`
	Borrowed           int        `json:"borrowed" db:"borrowed_quantity"`
	Returned           int        `json:"returned" db:"returned_quantity"`
	Lost               int        `json:"lost" db:"lost_quantity"`
	Damaged            int        `json:"damaged" db:"damaged_quantity"`
	Outstanding        int        `json:"outstanding" db:"outstanding"`
}

type InventoryByGroup struct {
	GroupID          int64  `json:"groupId" db:"group_id"`
	GroupName        string `json:"group" db:"group_name"`
	WardrobeItemID   int64  `json:"wardrobeItemId" db:"wardrobe_item_id"`
	WardrobeItemName string `json:"wardrobeItem" db:"wardrobe_item_name"`
	Lent             int    `json:"lent" db:"lent"`
}

type InventoryTotals struct {
	Total     int `json:"total" db:"total"`
	Available int `json:"available" db:"available"`
	Lent      int `json:"lent" db:"lent"`
}

type InventoryReport struct {
	Summary []InventoryByGroup `json:"summary"`
	Totals  InventoryTotals    `json:"totals"`
}
