package repository

import (
	"time"

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/model"
)

// DefaultSeed returns the five built-in events. Dates are UTC.
func DefaultSeed() []model.Event {
	return []model.Event{
		{
			ID:              1,
			Name:            "Annual Tech Summit 2026",
			Date:            time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
			Location:        "San Francisco Convention Center",
			Description:     "Join industry leaders and innovators for a full day of presentations, workshops, and networking. Explore the latest trends in cloud computing, AI, and digital transformation.",
			Capacity:        500,
			RegisteredCount: 312,
		},
		{
			ID:              2,
			Name:            "Web Development Workshop",
			Date:            time.Date(2026, 2, 20, 14, 0, 0, 0, time.UTC),
			Location:        "Austin Tech Hub",
			Description:     "Learn modern web development practices with hands-on coding sessions. Topics include Blazor, ASP.NET Core, and responsive design.",
			Capacity:        50,
			RegisteredCount: 48,
		},
		{
			ID:              3,
			Name:            "Corporate Leadership Gala",
			Date:            time.Date(2026, 3, 25, 18, 30, 0, 0, time.UTC),
			Location:        "Grand Ballroom, Manhattan",
			Description:     "An elegant evening celebrating corporate excellence and leadership achievements. Includes networking dinner and awards ceremony.",
			Capacity:        200,
			RegisteredCount: 156,
		},
		{
			ID:              4,
			Name:            "Startup Pitch Competition",
			Date:            time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC),
			Location:        "Innovation Hub, Boston",
			Description:     "Watch promising startups pitch their ideas to venture capitalists and investors. Open to entrepreneurs and investors interested in emerging technologies.",
			Capacity:        300,
			RegisteredCount: 195,
		},
		{
			ID:              5,
			Name:            "Cloud Security Conference",
			Date:            time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC),
			Location:        "Seattle Convention Center",
			Description:     "Expert-led discussions on the latest cloud security threats, best practices, and compliance strategies for enterprises.",
			Capacity:        400,
			RegisteredCount: 285,
		},
	}
}
