package resolver

// CuratedTable returns the built-in curated metadata table, authored offline
// against the album as of the last curation pass. Keys are 10-character
// identifier prefixes (see extractor.KeyPrefix).
func CuratedTable() map[string]CuratedEntry {
	return map[string]CuratedEntry{
		"AP1GczMRup": {Category: "On-site Work", Description: "Technician on a bucket lift tidying communication lines in front of a building"},
		"AP1GczPJjI": {Category: "CCTV & Security", Description: "Pole-mounted CCTV camera install with cabling routed into a waterproof box"},
		"AP1GczPZRM": {Category: "Team & Training", Description: "Team testing cameras and recording equipment in the meeting room"},
		"AP1GczP9wR": {Category: "Team & Training", Description: "Configuring recorders and checking cameras before handover"},
		"AP1GczNJCX": {Category: "Team & Training", Description: "Team briefing and camera system walkthrough in the control room"},
		"AP1GczNmCK": {Category: "Network & Fiber", Description: "Rooftop wireless receiver installation with cable runs"},
		"AP1GczMCmj": {Category: "Network & Fiber", Description: "Technician configuring an indoor control cabinet from a laptop"},
		"AP1GczPkgh": {Category: "Network & Fiber", Description: "Inspecting rooftop communication equipment ahead of a cable pull"},
		"AP1GczOZR-": {Category: "Network & Fiber", Description: "Mast and communication equipment installed at a high point"},
		"AP1GczPhx5": {Category: "On-site Work", Description: "Signal testing and equipment hookup outside the building"},
		"AP1GczPLfa": {Category: "Network & Fiber", Description: "Receiver setup and rooftop cable management"},
		"AP1GczOWTM": {Category: "Team & Training", Description: "Team staging equipment and running system tests in the lab"},
		"AP1GczOKc9": {Category: "Network & Fiber", Description: "Checking switches and network gear in the rack cabinet"},
		"AP1GczPRRa": {Category: "On-site Work", Description: "Technician on a ladder installing and routing cable on a light pole"},
		"AP1GczONVb": {Category: "On-site Work", Description: "Bucket-truck field job servicing communication lines"},
		"AP1GczOaqY": {Category: "On-site Work", Description: "Crew tidying communication lines on poles in a residential area"},
		"AP1GczMyFw": {Category: "Network & Fiber", Description: "Team paying out communication cable from a large spool"},
		"AP1GczOCbw": {Category: "Network & Fiber", Description: "Fusion splicer in use joining fiber optic strands"},
		"AP1GczMJ-a": {Category: "Network & Fiber", Description: "Control cabinet install with cabling dressed neatly into trays"},
		"AP1GczOTZS": {Category: "Network & Fiber", Description: "Terminating and checking network gear in the server cabinet"},
		"AP1GczOr1f": {Category: "CCTV & Security", Description: "On-site CCTV feed verification on a field monitor"},
		"AP1GczPOOG": {Category: "CCTV & Security", Description: "NVR console showing multiple camera feeds at once"},
		"AP1GczPun6": {Category: "CCTV & Security", Description: "IP camera install with power and data terminated"},
		"AP1GczORWq": {Category: "Team & Training", Description: "Coordinating the crew and splitting field duties"},
		"AP1GczPT6W": {Category: "On-site Work", Description: "Ladder work repairing riverside communication lines"},
		"AP1GczMyQp": {Category: "On-site Work", Description: "Poles and communication equipment installed along the walkway"},
		"AP1GczP4lC": {Category: "On-site Work", Description: "Field install of communication cable and pole equipment"},
		"AP1GczONWv": {Category: "On-site Work", Description: "Adjusting steel brackets and routing power on a tall pole"},
		"AP1GczMjc8": {Category: "On-site Work", Description: "Control box install and cable check on a light pole"},
		"AP1GczNj6O": {Category: "CCTV & Security", Description: "Riverside surveillance camera installation"},
	}
}
