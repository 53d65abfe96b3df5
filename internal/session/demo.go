package session

import (
	"time"

	"khata/internal/model"
)

// Seed fills a fresh session with a believable half-month of data so
// the dashboard has something to show. Dates are spread backwards from
// the session clock but never before the 1st of the month.
func Seed(s *Session) error {
	s.CreateJar("Chai", 500)
	s.CreateJar("Fest", 3000)
	s.CreateJar("Emergency", 5000)
	s.CreateJar("New Headphones", 2200)
	s.AdjustJar(model.JarEmergency, 750)
	s.AdjustJar(model.JarChai, 85)

	today := s.now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 10, 0, 0, 0, today.Location())
	day := func(n int) time.Time {
		d := monthStart.AddDate(0, 0, n-1)
		if d.After(today) {
			return today
		}
		return d
	}

	spends := []struct {
		day    int
		amount float64
		cat    model.Category
		ch     model.Channel
		note   string
	}{
		{1, 120, model.CategoryMess, model.ChannelUPI, "mess card recharge"},
		{2, 60, model.CategoryTravel, model.ChannelUPI, "auto to station"},
		{3, 340, model.CategoryOutings, model.ChannelUPI, "pizza night"},
		{4, 220, model.CategoryGroceries, model.ChannelCash, ""},
		{5, 90, model.CategoryMess, model.ChannelUPI, ""},
		{6, 450, model.CategoryShopping, model.ChannelCard, "shoes, finally"},
		{7, 35, model.CategoryMisc, model.ChannelCash, "photocopies"},
		{8, 150, model.CategoryAcademics, model.ChannelUPI, "lab manual"},
		{9, 280, model.CategoryOutings, model.ChannelUPI, "movie + snacks"},
		{10, 110, model.CategoryMess, model.ChannelUPI, ""},
		{11, 75, model.CategoryTravel, model.ChannelUPI, "bus pass top-up"},
		{12, 190, model.CategoryGroceries, model.ChannelUPI, ""},
	}
	for _, sp := range spends {
		if err := s.AddTransaction(sp.amount, day(sp.day), sp.cat, sp.ch, sp.note); err != nil {
			return err
		}
	}

	if err := s.TopUp(500, "tuition for neighbour's kid"); err != nil {
		return err
	}

	squadID, err := s.CreateGroup("Goa trip", []string{"Me", "Aman", "Priya", "Rahul"})
	if err != nil {
		return err
	}
	squadExpenses := []struct {
		day    int
		amount float64
		desc   string
		paidBy string
		split  []string
	}{
		{6, 2400, "hostel booking", "Me", []string{"Me", "Aman", "Priya", "Rahul"}},
		{7, 900, "scooter rentals", "Aman", []string{"Me", "Aman", "Priya"}},
		{8, 1300, "seafood dinner", "Priya", []string{"Me", "Aman", "Priya", "Rahul"}},
	}
	for _, e := range squadExpenses {
		if err := s.AddGroupTransaction(squadID, e.amount, e.desc, day(e.day), e.paidBy, e.split); err != nil {
			return err
		}
	}

	fest := s.CreateEvent("College fest", today.AddDate(0, 1, 0), 1500)
	s.ReserveForEvent(fest, 400)
	s.CreateEvent("Diwali travel", today.AddDate(0, 2, 0), 2000)

	return nil
}
