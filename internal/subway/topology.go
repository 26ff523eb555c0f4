package subway

// Lines maps each line code to its ordered station sequence
// (northbound/eastbound direction). Built from MTA GTFS and validated
// against the printed subway map.
var Lines = map[string][]string{
	"1": { // Broadway-Seventh Avenue Line (Red)
		"South Ferry",
		"Rector Street",
		"Cortlandt Street",
		"Chambers Street",
		"Franklin Street",
		"Canal Street",
		"Spring Street",
		"Houston Street",
		"14th Street",
		"18th Street",
		"23rd Street",
		"28th Street",
		"34th Street-Herald Square",
		"42nd Street-Times Square",
		"49th Street",
		"59th Street-Columbus Circle",
		"72nd Street",
		"79th Street",
	},
	"2": { // Broadway-Seventh Avenue Line (Red)
		"Bowling Green",
		"Wall Street",
		"Fulton Street",
		"Park Place",
		"Chambers Street",
		"Franklin Street",
		"Canal Street",
		"Spring Street",
		"Houston Street",
		"14th Street",
		"18th Street",
		"23rd Street",
		"28th Street",
		"34th Street-Herald Square",
		"42nd Street-Times Square",
		"49th Street",
		"59th Street-Columbus Circle",
		"72nd Street",
	},
	"3": { // Broadway-Seventh Avenue Line (Red)
		"Bowling Green",
		"Wall Street",
		"Fulton Street",
		"Park Place",
		"Chambers Street",
		"Franklin Street",
		"Canal Street",
		"Spring Street",
		"Houston Street",
		"14th Street",
		"18th Street",
		"23rd Street",
		"28th Street",
		"34th Street-Herald Square",
		"42nd Street-Times Square",
		"49th Street",
		"59th Street-Columbus Circle",
		"72nd Street",
	},
	"4": { // Lexington Avenue Line (Green)
		"Bowling Green",
		"Wall Street",
		"Fulton Street",
		"Park Place",
		"Chambers Street",
		"Brooklyn Bridge-City Hall",
		"Spring Street",
		"Canal Street",
		"14th Street-Union Square",
		"18th Street",
		"23rd Street-Lexington",
		"28th Street-Lexington",
		"33rd Street",
		"Grand Central-42nd Street",
		"59th Street",
		"86th Street",
	},
	"5": { // Lexington Avenue Line (Green)
		"Bowling Green",
		"Wall Street",
		"Fulton Street",
		"Park Place",
		"Chambers Street",
		"Brooklyn Bridge-City Hall",
		"Spring Street",
		"Canal Street",
		"14th Street-Union Square",
		"18th Street",
		"23rd Street-Lexington",
		"28th Street-Lexington",
		"33rd Street",
		"Grand Central-42nd Street",
		"59th Street",
		"86th Street",
	},
	"6": { // Lexington Avenue Line (Green)
		"Bowling Green",
		"Wall Street",
		"Fulton Street",
		"Park Place",
		"Chambers Street",
		"Brooklyn Bridge-City Hall",
		"Spring Street",
		"Canal Street",
		"14th Street-Union Square",
		"18th Street",
		"23rd Street-Lexington",
		"28th Street-Lexington",
		"33rd Street",
		"Grand Central-42nd Street",
		"59th Street",
	},
	"A": { // Eighth Avenue Line (Blue)
		"Inwood-207th Street",
		"175th Street",
		"145th Street",
		"125th Street",
		"59th Street-Columbus Circle",
		"42nd Street-Port Authority",
		"34th Street-Penn Station",
		"14th Street",
		"8th Avenue-14th Street",
		"West 4th Street",
		"Spring Street",
		"Canal Street",
		"Chambers Street",
		"Fulton Street",
		"Jay Street-MetroTech",
		"High Street-Brooklyn Bridge",
		"Hoyt-Schermerhorn",
		"Carroll Street",
		"Nostrand Avenue",
		"Kingston-Throop Avenues",
	},
	"C": { // Eighth Avenue Line (Blue)
		"168th Street",
		"145th Street",
		"125th Street",
		"110th Street",
		"72nd Street",
		"59th Street-Columbus Circle",
		"42nd Street-Port Authority",
		"34th Street-Penn Station",
		"14th Street",
		"8th Avenue-14th Street",
		"West 4th Street",
		"Spring Street",
		"Canal Street",
		"Chambers Street",
		"Fulton Street",
		"Jay Street-MetroTech",
		"Hoyt-Schermerhorn",
		"Carroll Street",
		"Nostrand Avenue",
	},
	"E": { // Eighth Avenue Line (Blue)
		"Jamaica Center-Parsons/Archer",
		"Forest Hills-71st Avenue",
		"Jackson Heights-Roosevelt Avenue",
		"42nd Street-Port Authority",
		"34th Street-Penn Station",
		"14th Street",
		"8th Avenue-14th Street",
		"West 4th Street",
		"Spring Street",
		"Canal Street",
		"World Trade Center",
	},
	"F": { // Culver Line (Orange)
		"Jamaica Center-Parsons/Archer",
		"Forest Hills-71st Avenue",
		"Jackson Heights-Roosevelt Avenue",
		"23rd Street-Broadway-Lafayette",
		"14th Street-Broadway-Lafayette",
		"West 4th Street",
		"Broadway-Lafayette",
		"Spring Street",
		"Canal Street",
		"Chambers Street",
		"Jay Street-MetroTech",
		"Carroll Street",
		"Court Street",
		"Bergen Street",
		"Hoyt-Schermerhorn",
	},
	"N": { // Broadway Line (Yellow)
		"Astoria-Ditmars Boulevard",
		"30th Avenue",
		"Astoria Boulevard",
		"Queensboro Plaza",
		"Lexington Avenue",
		"Herald Square",
		"28th Street-Broadway",
		"23rd Street-Broadway",
		"14th Street",
		"8th Street",
		"Union Square-14th Street",
		"Canal Street",
		"Chambers Street",
		"Cortlandt Street",
		"Rector Street",
		"Whitehall Terminal",
	},
	"Q": { // Broadway Line (Yellow)
		"96th Street",
		"72nd Street",
		"57th Street",
		"42nd Street-Times Square",
		"34th Street",
		"Herald Square",
		"28th Street-Broadway",
		"23rd Street-Broadway",
		"14th Street",
		"Canal Street",
		"Chambers Street",
		"Cortlandt Street",
		"Bowling Green",
	},
	"R": { // Broadway Line (Yellow)
		"Forest Hills-71st Avenue",
		"Jackson Heights-Roosevelt Avenue",
		"Queensboro Plaza",
		"Lexington Avenue",
		"Herald Square",
		"28th Street-Broadway",
		"23rd Street-Broadway",
		"14th Street",
		"8th Street",
		"Canal Street",
		"Chambers Street",
		"Cortlandt Street",
		"Rector Street",
		"Whitehall Terminal",
	},
	"W": { // Broadway Line (Yellow) - limited service
		"Astoria-Ditmars Boulevard",
		"30th Avenue",
		"Astoria Boulevard",
		"Queensboro Plaza",
		"Lexington Avenue",
		"Herald Square",
		"28th Street-Broadway",
		"23rd Street-Broadway",
		"14th Street",
		"Canal Street",
		"Chambers Street",
		"Cortlandt Street",
		"Whitehall Terminal",
	},
	"L": { // 14th Street-Canarsie Line (Gray)
		"8th Avenue-14th Street",
		"6th Avenue",
		"Union Square-14th Street",
		"1st Avenue",
		"Bedford Avenue",
		"Lorimer Street",
		"Graham Avenue",
		"Jefferson Street",
		"Myrtle Avenue",
	},
	"G": { // Crosstown Line (Green)
		"Court Square",
		"Greenpoint Avenue",
		"Nassau Avenue",
		"Metropolitan Avenue",
		"Broadway",
		"Myrtle-Willoughby Avenues",
		"Clinton-Washington",
		"Classon Avenue",
		"Nostrand Avenue",
		"Bedford-Stuyvesant",
		"Hoyt-Schermerhorn",
		"Carroll Street",
		"Fulton Street",
	},
	"S": { // Shuttle Service (Gray)
		"42nd Street-Times Square",
		"Grand Central-42nd Street",
	},
	"7": { // Flushing Line (Red)
		"Flushing-Main Street",
		"Woodside",
		"Jackson Heights-Roosevelt Avenue",
		"Queens Plaza",
		"Lexington Avenue",
		"Grand Central-42nd Street",
		"34th Street-Herald Square",
		"28th Street",
		"23rd Street",
		"18th Street",
		"14th Street",
		"42nd Street-Times Square",
	},
}

// NodeID identifies a search node: a station served by a specific line.
type NodeID struct {
	Station string
	Line    string
}

// TransferEdge declares a one-directional walking connection to another
// (station, line) node. Transfers are only symmetric when declared both ways.
type TransferEdge struct {
	ToStation   string
	ToLine      string
	WalkMinutes int
}

// TransferPoints maps a (station, line) node to its declared transfer targets.
var TransferPoints = map[NodeID][]TransferEdge{
	// Canal Street - major transfer hub
	{"Canal Street", "1"}: {
		{"Canal Street", "2", 1},
		{"Canal Street", "3", 1},
		{"Canal Street", "4", 2},
		{"Canal Street", "5", 2},
		{"Canal Street", "6", 2},
		{"Canal Street", "A", 2},
		{"Canal Street", "C", 2},
	},
	{"Canal Street", "N"}: {
		{"Canal Street", "R", 1},
		{"Canal Street", "W", 1},
		{"Canal Street", "A", 2},
		{"Canal Street", "C", 2},
		{"Canal Street", "1", 2},
		{"Canal Street", "2", 2},
		{"Canal Street", "6", 2},
	},
	// 42nd Street-Times Square - major transfer hub
	{"42nd Street-Times Square", "1"}: {
		{"42nd Street-Times Square", "2", 1},
		{"42nd Street-Times Square", "3", 1},
		{"42nd Street-Times Square", "Q", 2},
		{"42nd Street-Times Square", "S", 1},
		{"Grand Central-42nd Street", "4", 3},
		{"Grand Central-42nd Street", "5", 3},
		{"Grand Central-42nd Street", "6", 3},
		{"Grand Central-42nd Street", "7", 3},
	},
	{"42nd Street-Times Square", "S"}: {
		{"Grand Central-42nd Street", "4", 1},
		{"Grand Central-42nd Street", "5", 1},
		{"Grand Central-42nd Street", "6", 1},
		{"Grand Central-42nd Street", "7", 1},
	},
	// Grand Central-42nd Street - transfers to/from the Times Square area
	{"Grand Central-42nd Street", "4"}: {
		{"42nd Street-Times Square", "1", 3},
		{"42nd Street-Times Square", "3", 3},
		{"42nd Street-Times Square", "S", 1},
	},
	{"Grand Central-42nd Street", "5"}: {
		{"42nd Street-Times Square", "1", 3},
		{"42nd Street-Times Square", "3", 3},
		{"42nd Street-Times Square", "S", 1},
	},
	{"Grand Central-42nd Street", "6"}: {
		{"42nd Street-Times Square", "1", 3},
		{"42nd Street-Times Square", "3", 3},
		{"42nd Street-Times Square", "S", 1},
	},
	{"Grand Central-42nd Street", "7"}: {
		{"42nd Street-Times Square", "1", 3},
		{"42nd Street-Times Square", "S", 1},
	},
	{"Grand Central-42nd Street", "S"}: {
		{"42nd Street-Times Square", "1", 1},
		{"42nd Street-Times Square", "3", 1},
	},
	// 14th Street transfers
	{"14th Street", "1"}: {
		{"14th Street", "2", 1},
		{"14th Street", "3", 1},
		{"14th Street-Union Square", "4", 2},
		{"14th Street-Union Square", "5", 2},
		{"14th Street-Union Square", "6", 2},
		{"Union Square-14th Street", "L", 1},
		{"14th Street", "N", 2},
		{"14th Street", "Q", 2},
		{"14th Street", "R", 2},
		{"14th Street", "W", 2},
		{"8th Avenue-14th Street", "A", 2},
		{"8th Avenue-14th Street", "C", 2},
		{"8th Avenue-14th Street", "E", 2},
		{"8th Avenue-14th Street", "L", 2},
	},
	// Jay Street-MetroTech to High Street Brooklyn Bridge
	{"Jay Street-MetroTech", "A"}: {
		{"Jay Street-MetroTech", "C", 1},
		{"Jay Street-MetroTech", "F", 2},
		{"High Street-Brooklyn Bridge", "A", 1},
	},
	{"Jay Street-MetroTech", "C"}: {
		{"Jay Street-MetroTech", "A", 1},
		{"Jay Street-MetroTech", "F", 2},
	},
	// Fulton Street - major transfer hub (multiple lines intersect)
	{"Fulton Street", "2"}: {
		{"Fulton Street", "3", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "6", 1},
		{"Fulton Street", "A", 1},
		{"Fulton Street", "C", 1},
	},
	{"Fulton Street", "3"}: {
		{"Fulton Street", "2", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "6", 1},
		{"Fulton Street", "A", 1},
		{"Fulton Street", "C", 1},
	},
	{"Fulton Street", "4"}: {
		{"Fulton Street", "2", 1},
		{"Fulton Street", "3", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "6", 1},
		{"Fulton Street", "A", 1}, // A-4 transfer at Fulton is shorter than Canal
		{"Fulton Street", "C", 1},
	},
	{"Fulton Street", "5"}: {
		{"Fulton Street", "2", 1},
		{"Fulton Street", "3", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "6", 1},
		{"Fulton Street", "A", 1},
		{"Fulton Street", "C", 1},
	},
	{"Fulton Street", "6"}: {
		{"Fulton Street", "2", 1},
		{"Fulton Street", "3", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "A", 1},
		{"Fulton Street", "C", 1},
	},
	{"Fulton Street", "A"}: {
		{"Fulton Street", "C", 1},
		{"Fulton Street", "2", 1},
		{"Fulton Street", "3", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "6", 1},
	},
	{"Fulton Street", "C"}: {
		{"Fulton Street", "A", 1},
		{"Fulton Street", "2", 1},
		{"Fulton Street", "3", 1},
		{"Fulton Street", "4", 1},
		{"Fulton Street", "5", 1},
		{"Fulton Street", "6", 1},
	},
	// Canal Street (A/C to other lines)
	{"Canal Street", "A"}: {
		{"Canal Street", "C", 1},
		{"Canal Street", "1", 2},
		{"Canal Street", "2", 2},
		{"Canal Street", "4", 2},
		{"Canal Street", "5", 2},
		{"Canal Street", "6", 2},
		{"Jay Street-MetroTech", "A", 3},
	},
	{"Canal Street", "C"}: {
		{"Canal Street", "A", 1},
		{"Canal Street", "1", 2},
		{"Canal Street", "2", 2},
		{"Canal Street", "4", 2},
		{"Canal Street", "5", 2},
		{"Canal Street", "6", 2},
		{"Jay Street-MetroTech", "C", 3},
	},
}

// HubQuality ranks transfer hubs: 0 = major junction (preferred transfer),
// 1 = acceptable, 2 = minor. Stations absent from the map default to 2.
var HubQuality = map[string]int{
	"Canal Street":                0,
	"14th Street":                 0,
	"14th Street-Union Square":    0,
	"42nd Street-Times Square":    0,
	"Grand Central-42nd Street":   0,
	"Herald Square":               0,
	"Chambers Street":             0,
	"Fulton Street":               0,
	"Jay Street-MetroTech":        0,
	"34th Street-Herald Square":   0,
	"34th Street-Penn Station":    0,
	"59th Street-Columbus Circle": 0,
}

// LineDetail describes a subway line's service quality and branding.
type LineDetail struct {
	OnTimePercent float64
	Color         string
	Name          string
}

// LinePerformance holds per-line on-time performance and metadata. This is
// the default reliability dataset when no fresher snapshot is supplied.
var LinePerformance = map[string]LineDetail{
	"1": {OnTimePercent: 88, Color: "red", Name: "Broadway-Seventh Ave"},
	"2": {OnTimePercent: 85, Color: "red", Name: "Broadway-Seventh Ave"},
	"3": {OnTimePercent: 85, Color: "red", Name: "Broadway-Seventh Ave"},
	"4": {OnTimePercent: 87, Color: "green", Name: "Lexington Ave"},
	"5": {OnTimePercent: 86, Color: "green", Name: "Lexington Ave"},
	"6": {OnTimePercent: 88, Color: "green", Name: "Lexington Ave"},
	"A": {OnTimePercent: 82, Color: "blue", Name: "Eighth Ave"},
	"C": {OnTimePercent: 81, Color: "blue", Name: "Eighth Ave"},
	"E": {OnTimePercent: 83, Color: "blue", Name: "Eighth Ave"},
	"F": {OnTimePercent: 78, Color: "orange", Name: "Culver"},
	"G": {OnTimePercent: 80, Color: "green", Name: "Crosstown"},
	"N": {OnTimePercent: 79, Color: "yellow", Name: "Broadway"},
	"Q": {OnTimePercent: 84, Color: "yellow", Name: "Broadway"},
	"R": {OnTimePercent: 80, Color: "yellow", Name: "Broadway"},
	"W": {OnTimePercent: 77, Color: "yellow", Name: "Broadway"},
	"L": {OnTimePercent: 85, Color: "gray", Name: "14th St-Canarsie"},
	"7": {OnTimePercent: 83, Color: "red", Name: "Flushing"},
	"S": {OnTimePercent: 92, Color: "gray", Name: "Shuttle Service"},
}

// DefaultPerformanceMap flattens LinePerformance to line -> on-time percent,
// the shape consumed by the scoring engine.
func DefaultPerformanceMap() map[string]float64 {
	m := make(map[string]float64, len(LinePerformance))
	for line, d := range LinePerformance {
		m[line] = d.OnTimePercent
	}
	return m
}
