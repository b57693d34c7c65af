package main

// Built-in event deck for Timeline. Values are years; negative values are BC.

var timelineEvents = []TimelineEvent{
	{ID: "pyramids-giza", Title: "Great Pyramid of Giza Built", Category: "time", Value: -2560, Description: "Tallest structure on Earth for nearly 4,000 years"},
	{ID: "first-olympics", Title: "First Olympic Games", Category: "time", Value: -776, Description: "Held in Olympia, Greece"},
	{ID: "rome-founded", Title: "Founding of Rome", Category: "time", Value: -753, Description: "Traditional date of Romulus founding the city"},
	{ID: "magna-carta", Title: "Magna Carta Signed", Category: "time", Value: 1215, Description: "King John agrees to limits on royal power"},
	{ID: "printing-press", Title: "Gutenberg Printing Press", Category: "time", Value: 1440, Description: "Movable type arrives in Europe"},
	{ID: "columbus-america", Title: "Columbus Reaches the Americas", Category: "time", Value: 1492, Description: "First voyage lands in the Caribbean"},
	{ID: "mona-lisa", Title: "Mona Lisa Painted", Category: "time", Value: 1503, Description: "Leonardo begins his most famous portrait"},
	{ID: "newton-principia", Title: "Newton Publishes Principia", Category: "time", Value: 1687, Description: "Laws of motion and universal gravitation"},
	{ID: "french-revolution", Title: "French Revolution Begins", Category: "time", Value: 1789, Description: "Storming of the Bastille"},
	{ID: "telephone-invented", Title: "Telephone Patented", Category: "time", Value: 1876, Description: "Bell beats Gray to the patent office"},
	{ID: "eiffel-tower", Title: "Eiffel Tower Completed", Category: "time", Value: 1889, Description: "Iconic Paris landmark finished"},
	{ID: "wright-flight", Title: "First Powered Flight", Category: "time", Value: 1903, Description: "The Wright Flyer at Kitty Hawk"},
	{ID: "ford-model-t", Title: "Ford Model T Launched", Category: "time", Value: 1908, Description: "The car that motorized America"},
	{ID: "titanic", Title: "Titanic Sinks", Category: "time", Value: 1912, Description: "RMS Titanic hits iceberg"},
	{ID: "penicillin", Title: "Penicillin Discovered", Category: "time", Value: 1928, Description: "Fleming's moldy petri dish"},
	{ID: "ww2-end", Title: "World War II Ends", Category: "time", Value: 1945, Description: "VJ Day - Japan surrenders"},
	{ID: "dna-structure", Title: "DNA Structure Described", Category: "time", Value: 1953, Description: "Watson and Crick publish the double helix"},
	{ID: "moon-landing", Title: "Moon Landing (Apollo 11)", Category: "time", Value: 1969, Description: "First humans land on the Moon"},
	{ID: "chernobyl", Title: "Chernobyl Disaster", Category: "time", Value: 1986, Description: "Worst nuclear accident in history"},
	{ID: "berlin-wall-fall", Title: "Fall of Berlin Wall", Category: "time", Value: 1989, Description: "End of Cold War symbol"},
	{ID: "www-invented", Title: "World Wide Web Invented", Category: "time", Value: 1989, Description: "Tim Berners-Lee creates WWW"},
	{ID: "google-founded", Title: "Google Founded", Category: "time", Value: 1998, Description: "Started in a Menlo Park garage"},
	{ID: "human-genome", Title: "Human Genome Sequenced", Category: "time", Value: 2003, Description: "Thirteen-year project completed"},
	{ID: "first-iphone", Title: "First iPhone Released", Category: "time", Value: 2007, Description: "Apple revolutionizes smartphones"},
	{ID: "bitcoin-launch", Title: "Bitcoin Network Launches", Category: "time", Value: 2009, Description: "The genesis block is mined"},
}

func findTimelineEvent(id string) (TimelineEvent, bool) {
	for _, e := range timelineEvents {
		if e.ID == id {
			return e, true
		}
	}
	return TimelineEvent{}, false
}
