package suggestions

import (
	"github.com/promoforge/promoforge-backend/internal/models"
)

// Catalog is the static suggestion list. Order within a category matters:
// stronger ideas come first.
var Catalog = []models.Suggestion{
	{Title: "Behind the counter", Description: "Show how your signature drink is made, from bean to cup", Category: "coffee shop"},
	{Title: "Regulars wall", Description: "Celebrate a loyal customer (with permission) and their usual order", Category: "coffee shop"},
	{Title: "Bean origin story", Description: "Introduce this month's roast and where it comes from", Category: "coffee shop"},
	{Title: "Latte art timelapse", Description: "A 15-second pour video always performs", Category: "coffee shop"},

	{Title: "Today's special plate", Description: "Photograph the dish your kitchen is proudest of today", Category: "restaurant"},
	{Title: "Meet the chef", Description: "A short introduction and the story behind one menu item", Category: "restaurant"},
	{Title: "Reservation nudge", Description: "Remind followers the weekend books out fast", Category: "restaurant"},

	{Title: "New arrivals rack", Description: "Quick walkthrough of what landed in store this week", Category: "retail"},
	{Title: "Styling tip", Description: "Pair two products your customers would not think to combine", Category: "retail"},
	{Title: "Back room peek", Description: "Unboxing day makes great candid content", Category: "retail"},

	{Title: "Before and after", Description: "Show a client transformation with a short caption", Category: "salon"},
	{Title: "Product shelf talk", Description: "Explain which retail product you reach for most and why", Category: "salon"},
	{Title: "Open slots today", Description: "Post late-cancellation openings for same-day bookings", Category: "salon"},

	{Title: "Customer spotlight", Description: "Share a recent review or testimonial with a thank-you", Category: "general"},
	{Title: "Ask your audience", Description: "Run a this-or-that question about your products", Category: "general"},
	{Title: "Founder note", Description: "A personal update on why you started the business", Category: "general"},
	{Title: "Weekly recap", Description: "Three photos from the week with one-line captions", Category: "general"},
	{Title: "Local shoutout", Description: "Tag a neighboring business you love working next to", Category: "general"},
	{Title: "FAQ answer", Description: "Answer the question customers ask most, in plain words", Category: "general"},
}
