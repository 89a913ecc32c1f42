package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория преступления
type Category string

const (
	CategoryTheft            Category = "theft"
	CategoryAssault          Category = "assault"
	CategoryBurglary         Category = "burglary"
	CategoryRobbery          Category = "robbery"
	CategoryFraud            Category = "fraud"
	CategoryCybercrime       Category = "cybercrime"
	CategoryDomesticViolence Category = "domestic_violence"
	CategoryDrugRelated      Category = "drug_related"
	CategoryTrafficViolation Category = "traffic_violation"
	CategoryVandalism        Category = "vandalism"
	CategoryMurder           Category = "murder"
	CategoryKidnapping       Category = "kidnapping"
	CategorySexualAssault    Category = "sexual_assault"
	CategoryOther            Category = "other"
)

// Categories перечисляет все допустимые категории
var Categories = []Category{
	CategoryTheft, CategoryAssault, CategoryBurglary, CategoryRobbery, CategoryFraud,
	CategoryCybercrime, CategoryDomesticViolence, CategoryDrugRelated, CategoryTrafficViolation,
	CategoryVandalism, CategoryMurder, CategoryKidnapping, CategorySexualAssault, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity - тяжесть инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Status - статус обработки заявления
type Status string

const (
	StatusSubmitted          Status = "submitted"
	StatusUnderInvestigation Status = "under_investigation"
	StatusAssigned           Status = "assigned"
	StatusInProgress         Status = "in_progress"
	StatusResolved           Status = "resolved"
	StatusClosed             Status = "closed"
	StatusRejected           Status = "rejected"
)

// ResolvedStatuses - статусы, которые считаются завершенными
var ResolvedStatuses = []Status{StatusResolved, StatusClosed}

// PendingStatuses - статусы, по которым работа еще ведется
var PendingStatuses = []Status{StatusSubmitted, StatusUnderInvestigation, StatusAssigned, StatusInProgress}

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusUnderInvestigation, StatusAssigned, StatusInProgress,
		StatusResolved, StatusClosed, StatusRejected:
		return true
	}
	return false
}

// Incident - запись о преступлении из журнала заявлений (только чтение)
type Incident struct {
	ID                uuid.UUID  `json:"id"`
	ReportNumber      string     `json:"report_number"`
	Category          Category   `json:"category"`
	Severity          Severity   `json:"severity"`
	Status            Status     `json:"status"`
	PriorityScore     *float64   `json:"priority_score,omitempty"`
	IsEmergency       bool       `json:"is_emergency"`
	LocationID        uuid.UUID  `json:"location_id"`
	AssignedOfficerID *uuid.UUID `json:"assigned_officer_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted сообщает, помечен ли инцидент как удаленный
func (i *Incident) IsDeleted() bool {
	return i.DeletedAt != nil
}
