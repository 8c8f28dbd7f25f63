package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain"
)

// MealSlot is one of the four fixed daily meals.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// MealSlots lists the slots every day carries, in display order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// ParseMealSlot validates s case-insensitively.
func ParseMealSlot(s string) (MealSlot, error) {
	slot := MealSlot(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(MealSlots, slot) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMealSlot, s)
	}
	return slot, nil
}

// maxPlanDays bounds the number of days a single plan can span.
const maxPlanDays = 366

// DayPlan is one calendar day of a MealPlan. Meals always holds all four slots.
type DayPlan struct {
	Date  time.Time
	Meals map[MealSlot][]int64
}

// ItemIDs returns the ids referenced by any slot of the day, in slot order.
func (d DayPlan) ItemIDs() []int64 {
	var ids []int64
	for _, slot := range MealSlots {
		ids = append(ids, d.Meals[slot]...)
	}
	return ids
}

// MealPlan covers every calendar day from StartDate to EndDate inclusive.
type MealPlan struct {
	StartDate time.Time
	EndDate   time.Time
	Days      []DayPlan
}

// NewMealPlan seeds one DayPlan per day with four empty slots.
func NewMealPlan(start, end time.Time) (*MealPlan, error) {
	start, end = CalendarDay(start), CalendarDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", domain.ErrInvalidDateRange, FormatDate(end), FormatDate(start))
	}

	n := int(end.Sub(start).Hours()/24) + 1
	if n > maxPlanDays {
		return nil, fmt.Errorf("%w: plan spans %d days, limit is %d", domain.ErrInvalidDateRange, n, maxPlanDays)
	}

	days := make([]DayPlan, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		meals := make(map[MealSlot][]int64, len(MealSlots))
		for _, slot := range MealSlots {
			meals[slot] = []int64{}
		}
		days = append(days, DayPlan{Date: d, Meals: meals})
	}

	return &MealPlan{StartDate: start, EndDate: end, Days: days}, nil
}

// Day returns the DayPlan on the same calendar day as date.
func (p *MealPlan) Day(date time.Time) (*DayPlan, bool) {
	for i := range p.Days {
		if SameDay(p.Days[i].Date, date) {
			return &p.Days[i], true
		}
	}
	return nil, false
}

// AddItem places id into the slot. Adding an id already present is a no-op.
func (p *MealPlan) AddItem(date time.Time, slot MealSlot, id int64) error {
	day, err := p.slotDay(date, slot)
	if err != nil {
		return err
	}
	if slices.Contains(day.Meals[slot], id) {
		return nil
	}
	day.Meals[slot] = append(day.Meals[slot], id)
	return nil
}

// RemoveItem drops id from the slot. Removing an absent id is a no-op.
func (p *MealPlan) RemoveItem(date time.Time, slot MealSlot, id int64) error {
	day, err := p.slotDay(date, slot)
	if err != nil {
		return err
	}
	day.Meals[slot] = slices.DeleteFunc(day.Meals[slot], func(v int64) bool { return v == id })
	return nil
}

// ItemIDs returns every id referenced by the plan once, in first-seen order.
func (p *MealPlan) ItemIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, day := range p.Days {
		for _, id := range day.ItemIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func (p *MealPlan) slotDay(date time.Time, slot MealSlot) (*DayPlan, error) {
	if !slices.Contains(MealSlots, slot) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMealSlot, string(slot))
	}
	day, ok := p.Day(date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDayNotInPlan, FormatDate(date))
	}
	return day, nil
}
