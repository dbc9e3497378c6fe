package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	app "acne-bot/internal/application"
	"acne-bot/internal/domain/entity"
)

var errUsage = errors.New("usage")

// parseCounts разбирает аргументы /simulate: пусто или четыре числа.
func parseCounts(args string) (*app.CountsRequest, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 numbers, got %d", errUsage, len(fields))
	}
	values := make([]int, 4)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, f)
		}
		values[i] = n
	}
	return &app.CountsRequest{
		Comedones: values[0],
		Papules:   values[1],
		Pustules:  values[2],
		Nodules:   values[3],
	}, nil
}

// sessionErrorText подбирает ответ на ожидаемую ошибку команды.
func sessionErrorText(command string, err error) (string, bool) {
	switch {
	case errors.Is(err, app.ErrNoPhoto):
		return msgNoPhoto, true
	case errors.Is(err, entity.ErrLesionNotFound):
		if command == "remove" {
			return msgMarkNotFound, true
		}
		return msgNothingToUndo, true
	}
	return "", false
}

// parseMark разбирает аргументы /mark: тип и две координаты.
func parseMark(args string) (app.MarkRequest, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return app.MarkRequest{}, fmt.Errorf("%w: expected <type> <x> <y>", errUsage)
	}
	x, err := strconv.ParseFloat(strings.ReplaceAll(fields[1], ",", "."), 64)
	if err != nil {
		return app.MarkRequest{}, fmt.Errorf("%w: %q is not a number", errUsage, fields[1])
	}
	y, err := strconv.ParseFloat(strings.ReplaceAll(fields[2], ",", "."), 64)
	if err != nil {
		return app.MarkRequest{}, fmt.Errorf("%w: %q is not a number", errUsage, fields[2])
	}
	return app.MarkRequest{Type: strings.ToLower(fields[0]), X: x, Y: y}, nil
}

func formatAssessment(a *entity.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Severity: %s\n\n%s\n\n", a.Tier, a.Description)
	writeCounts(&b, a.Counts)
	writeRecommendations(&b, a.Recommendations)
	return b.String()
}

func formatSimulation(r *entity.SimulatedAssessment) string {
	var b strings.Builder
	requested := entity.CountsFromRequest(r.Requested).Total
	b.WriteString("🧪 Simulated analysis\n")
	fmt.Fprintf(&b, "IGA score: %d (%s)\n", r.IGAScore, r.Grade)
	fmt.Fprintf(&b, "Placed %d of %d requested lesions\n", r.Counts.Total, requested)
	if r.ScalesAgree {
		fmt.Fprintf(&b, "Threshold scale: %s\n\n", r.CountsTier)
	} else {
		fmt.Fprintf(&b, "Threshold scale: %s (differs from IGA)\n\n", r.CountsTier)
	}
	writeCounts(&b, r.Counts)
	writeRecommendations(&b, r.Recommendations)
	return b.String()
}

func formatSession(u *entity.User) string {
	c := entity.Aggregate(u.Lesions)
	return fmt.Sprintf("Marked: %d (comedones %d, papules %d, pustules %d, nodules %d)",
		c.Total, c.Comedones, c.Papules, c.Pustules, c.Nodules)
}

func formatTypes() string {
	var b strings.Builder
	b.WriteString("📚 Lesion types\n")
	for _, t := range entity.LesionTypes() {
		info, _ := t.Info()
		fmt.Fprintf(&b, "\n%s (/mark %s x y)\n%s\n", info.Name, t, info.Description)
		for _, ex := range info.Examples {
			fmt.Fprintf(&b, "• %s\n", ex)
		}
	}
	return b.String()
}

func writeCounts(b *strings.Builder, c entity.LesionCounts) {
	fmt.Fprintf(b, "Lesions: %d (inflammatory %d)\n", c.Total, c.Inflammatory)
	fmt.Fprintf(b, "• Comedones: %d\n• Papules: %d\n• Pustules: %d\n• Nodules: %d\n\n",
		c.Comedones, c.Papules, c.Pustules, c.Nodules)
}

func writeRecommendations(b *strings.Builder, recs []string) {
	b.WriteString("💡 Recommendations:\n")
	for i, r := range recs {
		fmt.Fprintf(b, "%d. %s\n", i+1, r)
	}
}
