package pipeline

import (
	"sort"

	"ai-news-scraper/internal/models"
)

// NewsSources returns the sites scanned for AI-related articles.
// Mostly Indian government portals and national tech desks; the search
// URLs already carry the "artificial intelligence" query.
func NewsSources() []models.NewsSource {
	return []models.NewsSource{
		{Name: "IndiaAI Impact Press", URL: "https://impact.indiaai.gov.in/media-resources?tab=press", Domain: "impact.indiaai.gov.in", Priority: 10, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "IndiaAI Articles", URL: "https://indiaai.gov.in/articles/all", Domain: "indiaai.gov.in", Priority: 10, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "NeGD Press Releases", URL: "https://negd.gov.in/press-release/", Domain: "negd.gov.in", Priority: 9, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "ET CIO AI News", URL: "https://cio.economictimes.indiatimes.com/news/artificial-intelligence?utm_source=main_menu2&utm_medium=homepage", Domain: "cio.economictimes.indiatimes.com", Priority: 8, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "News On Air National", URL: "https://www.newsonair.gov.in/category/national/", Domain: "newsonair.gov.in", Priority: 7, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "CMO Gujarat News", URL: "https://cmogujarat.gov.in/en/news", Domain: "cmogujarat.gov.in", Priority: 6, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Times of India AI", URL: "https://timesofindia.indiatimes.com/technology/artificial-intelligence", Domain: "timesofindia.indiatimes.com", Priority: 9, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Hindustan Times Tech", URL: "https://www.hindustantimes.com/technology", Domain: "hindustantimes.com", Priority: 8, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "ET AI", URL: "https://ai.economictimes.com/", Domain: "ai.economictimes.com", Priority: 8, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "RS Web Solutions Tech", URL: "https://www.rswebsols.com/category/technology/", Domain: "rswebsols.com", Priority: 4, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Global Voices Tech", URL: "https://globalvoices.org/-/topics/technology/", Domain: "globalvoices.org", Priority: 5, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Analytics India Magazine", URL: "http://analyticsindiamag.com/ai-news", Domain: "analyticsindiamag.com", Priority: 8, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "tele.net AI", URL: "https://tele.net.in/category/artificial-intelligence/", Domain: "tele.net.in", Priority: 5, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Hub Network Search", URL: "https://hubnetwork.in/?s=artificial+intelligence", Domain: "hubnetwork.in", Priority: 3, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Raj Bhavan Mizoram", URL: "https://rajbhavan.mizoram.gov.in/?s=artificial+intelligence", Domain: "rajbhavan.mizoram.gov.in", Priority: 3, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "New Indian Express Search", URL: "https://www.newindianexpress.com/search?q=artificial%20intelligence", Domain: "newindianexpress.com", Priority: 7, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Visive AI Search", URL: "https://www.visive.ai/_/search?query=Artificial%20Intelligence", Domain: "visive.ai", Priority: 4, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "NBBGC Search", URL: "https://nbbgc.org/?s=artificial+intelligence", Domain: "nbbgc.org", Priority: 2, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "The Hindu Tech", URL: "https://www.thehindu.com/sci-tech/technology/", Domain: "thehindu.com", Priority: 9, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Communications Today", URL: "https://www.communicationstoday.co.in/?s=artificial+intelligence", Domain: "communicationstoday.co.in", Priority: 4, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "ELE Times AI", URL: "https://www.eletimes.ai/?s=artificial+intelligence", Domain: "eletimes.ai", Priority: 4, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Data Breach Today", URL: "https://www.databreachtoday.com/latest-news", Domain: "databreachtoday.com", Priority: 5, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Indian Express AI", URL: "https://indianexpress.com/section/technology/artificial-intelligence/?ref=technology_pg", Domain: "indianexpress.com", Priority: 8, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "News18 Tech", URL: "https://www.news18.com/tech/", Domain: "news18.com", Priority: 7, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "ThePrint Search", URL: "https://theprint.in/?s=artificial+intelligence", Domain: "theprint.in", Priority: 6, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "ANI News Search", URL: "https://www.aninews.in/search/?query=artificial+intelligence", Domain: "aninews.in", Priority: 6, Enabled: true, Timeout: 60, RetryCount: 2},
		{Name: "Elets eGov Search", URL: "https://egov.eletsonline.com/?s=artificial%20intelligence", Domain: "egov.eletsonline.com", Priority: 4, Enabled: true, Timeout: 60, RetryCount: 2},
	}
}

// FilterSources narrows the source list by domain or name, drops
// disabled entries and orders the rest by descending priority, so the
// most valuable sites go first if the run gets cut short. An empty
// filter keeps everything enabled.
func FilterSources(sources []models.NewsSource, filter []string) []models.NewsSource {
	if len(filter) > 0 {
		filtered := make([]models.NewsSource, 0, len(sources))
		for _, source := range sources {
			for _, f := range filter {
				if source.Domain == f || source.Name == f {
					filtered = append(filtered, source)
					break
				}
			}
		}
		sources = filtered
	}

	enabled := make([]models.NewsSource, 0, len(sources))
	for _, source := range sources {
		if source.Enabled {
			enabled = append(enabled, source)
		}
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority > enabled[j].Priority
	})
	return enabled
}
