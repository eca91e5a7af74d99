package gallery

import "smartgallery/internal/domain"

// Fallback returns the fixed placeholder gallery served whenever the real
// pipeline fails or yields nothing. Pure and deterministic; every display
// category is represented so the UI's filters always have content.
func Fallback() []domain.GalleryRecord {
	return []domain.GalleryRecord{
		{ID: "fallback-1", URL: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Network & Fiber", Description: "Server room built to standard, cabling dressed for easy tracing"},
		{ID: "fallback-2", URL: "https://images.unsplash.com/photo-1557597774-9d273605dfa9?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "CCTV & Security", Description: "Sharp camera feeds, day and night"},
		{ID: "fallback-3", URL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Software & AI", Description: "Real-time dashboard for company data"},
		{ID: "fallback-4", URL: "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Network & Fiber", Description: "LAN runs installed neatly, built to last"},
		{ID: "fallback-5", URL: "https://images.unsplash.com/photo-1520697830682-bbb6e85e2b0b?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "CCTV & Security", Description: "Full-coverage camera install, secure around the clock"},
		{ID: "fallback-6", URL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Software & AI", Description: "Automated reporting that removes repeat work"},
		{ID: "fallback-7", URL: "https://images.unsplash.com/photo-1573164713988-8665fc963095?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Network & Fiber", Description: "Fiber optic runs with strong, stable signal"},
		{ID: "fallback-8", URL: "https://images.unsplash.com/photo-1517430816045-df4b7de11d1d?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Software & AI", Description: "AI automation cutting task time by more than half"},
		{ID: "fallback-9", URL: "https://images.unsplash.com/photo-1453873531674-2151bcd01707?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "CCTV & Security", Description: "CCTV control center, monitored from anywhere"},
		{ID: "fallback-10", URL: "https://images.unsplash.com/photo-1504307651254-35680f356dfd?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "On-site Work", Description: "On site, detail-focused, jobs finished properly"},
		{ID: "fallback-11", URL: "https://images.unsplash.com/photo-1621905251918-48416bd8575a?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "On-site Work", Description: "Specialist technicians handling installs in person"},
		{ID: "fallback-12", URL: "https://images.unsplash.com/photo-1531482615713-2afd69097998?q=80&w=1200&auto=format&fit=crop", Width: 1200, Height: 800, Category: "Team & Training", Description: "Team training on new skills for the AI era"},
	}
}
