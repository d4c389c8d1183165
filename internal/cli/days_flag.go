package cli

import (
	"strings"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/spf13/pflag"
)

// daysValue is a pflag.Value collecting weekday tokens. Accepts repeated
// flags and comma-separated lists, in any case ("mon,Wed" or "--days
// monday --days fri").
type daysValue struct {
	days *[]domain.Weekday
}

var _ pflag.Value = (*daysValue)(nil)

func newDaysValue(p *[]domain.Weekday) *daysValue {
	return &daysValue{days: p}
}

func (v *daysValue) Set(s string) error {
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		day, err := domain.ParseWeekday(token)
		if err != nil {
			return err
		}
		if !containsDay(*v.days, day) {
			*v.days = append(*v.days, day)
		}
	}
	return nil
}

func (v *daysValue) String() string {
	tokens := make([]string, len(*v.days))
	for i, d := range *v.days {
		tokens[i] = string(d)
	}
	return strings.Join(tokens, ",")
}

func (v *daysValue) Type() string {
	return "days"
}

func containsDay(days []domain.Weekday, day domain.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
