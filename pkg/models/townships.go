package models

import "strings"

// Township represents one entry of the fixed jurisdiction set: a display name
// and the numeric code the assessor uses in its published report file names.
type Township struct {
	DisplayName string
	ReportCode  int
}

// townships maps the lowercase township key to its record. The table is
// populated once at process start and never mutated.
var townships = map[string]Township{
	"barrington":    {DisplayName: "Barrington", ReportCode: 10},
	"berwyn":        {DisplayName: "Berwyn", ReportCode: 11},
	"bloom":         {DisplayName: "Bloom", ReportCode: 12},
	"bremen":        {DisplayName: "Bremen", ReportCode: 13},
	"calumet":       {DisplayName: "Calumet", ReportCode: 14},
	"cicero":        {DisplayName: "Cicero", ReportCode: 15},
	"elk grove":     {DisplayName: "Elk Grove", ReportCode: 16},
	"evanston":      {DisplayName: "Evanston", ReportCode: 17},
	"hanover":       {DisplayName: "Hanover", ReportCode: 18},
	"lemont":        {DisplayName: "Lemont", ReportCode: 19},
	"leyden":        {DisplayName: "Leyden", ReportCode: 20},
	"lyons":         {DisplayName: "Lyons", ReportCode: 21},
	"maine":         {DisplayName: "Maine", ReportCode: 22},
	"new trier":     {DisplayName: "New Trier", ReportCode: 23},
	"niles":         {DisplayName: "Niles", ReportCode: 24},
	"northfield":    {DisplayName: "Northfield", ReportCode: 25},
	"norwood park":  {DisplayName: "Norwood Park", ReportCode: 26},
	"oak park":      {DisplayName: "Oak Park", ReportCode: 27},
	"orland":        {DisplayName: "Orland", ReportCode: 28},
	"palatine":      {DisplayName: "Palatine", ReportCode: 29},
	"palos":         {DisplayName: "Palos", ReportCode: 30},
	"proviso":       {DisplayName: "Proviso", ReportCode: 31},
	"rich":          {DisplayName: "Rich", ReportCode: 32},
	"river forest":  {DisplayName: "River Forest", ReportCode: 33},
	"riverside":     {DisplayName: "Riverside", ReportCode: 34},
	"schaumburg":    {DisplayName: "Schaumburg", ReportCode: 35},
	"stickney":      {DisplayName: "Stickney", ReportCode: 36},
	"thornton":      {DisplayName: "Thornton", ReportCode: 37},
	"wheeling":      {DisplayName: "Wheeling", ReportCode: 38},
	"worth":         {DisplayName: "Worth", ReportCode: 39},
	"hyde park":     {DisplayName: "Hyde Park", ReportCode: 70},
	"jefferson":     {DisplayName: "Jefferson", ReportCode: 71},
	"lake":          {DisplayName: "Lake", ReportCode: 72},
	"lake view":     {DisplayName: "Lake View", ReportCode: 73},
	"north chicago": {DisplayName: "North Chicago", ReportCode: 74},
	"rogers park":   {DisplayName: "Rogers Park", ReportCode: 75},
	"south chicago": {DisplayName: "South Chicago", ReportCode: 76},
	"west chicago":  {DisplayName: "West Chicago", ReportCode: 77},
}

// LookupTownship resolves a caller-supplied township name to its record.
// Matching is case-insensitive and ignores surrounding whitespace.
func LookupTownship(name string) (Township, bool) {
	t, ok := townships[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
