package iotesting

import "github.com/gnames/airports/pkg/ingest"

// AirportsDat is a small raw airports file. It has 10 lines, 7 of them
// are valid airports. Goroka and Madang share a country, Nadzab and Lae
// Field share a city and a location.
const AirportsDat = `1,"Goroka","Goroka","Papua New Guinea","GKA","AYGA",-6.081689,145.391881,5282,10,"U","Pacific/Port_Moresby"
2,"Madang","Madang","Papua New Guinea","MAG","AYMD",-5.207083,145.7887,20,10,"U","Pacific/Port_Moresby"
this line is not an airport
4,"Nadzab Airport","Lae","Papua New Guinea","LAE","AYNZ",-6.569828,146.726242,239,10,"U","Pacific/Port_Moresby"
5,"Lae Field","Lae","Papua New Guinea","LFD","AYLF",-6.569828,146.726242,239,10,"U","Pacific/Port_Moresby"
6,"Thule Air Base","Thule","Greenland","THU","BGTL",-68.703161,76.531203,251,-4,"E","America/Thule"
7,"Unknown IATA","Nowhere","Greenland","",\N,1,1,1,0,"U","UTC"

9,"Paris Orly","Paris","France","ORY","LFPO",2.359444,48.725278,291,1,"E","Europe/Paris"
10,"Charles De Gaulle","Paris","France","CDG","LFPG",2.55,49.012779,392,1,"E","Europe/Paris"
`

// AirportsTotal is the number of lines in AirportsDat.
const AirportsTotal = 10

// AirportsAccepted is the number of valid lines in AirportsDat.
const AirportsAccepted = 7

// TimeZonesJSON assigns timezones to some airports of AirportsDat and to
// one airport that does not exist.
const TimeZonesJSON = `[
  {"AirportId": 1, "TimeZoneInfoId": "West Pacific Standard Time"},
  {"AirportId": 6, "TimeZoneInfoId": "Greenland Standard Time"},
  {"AirportId": 9, "TimeZoneInfoId": "Romance Standard Time"},
  {"AirportId": 999, "TimeZoneInfoId": "Nowhere Time"}
]`

// Regions is a small region reference table for tests.
var Regions = ingest.Regions{
	{Name: "en", EnglishName: "English"},
	{Name: "en-PG", EnglishName: "English (Papua New Guinea)"},
	{Name: "fr-FR", EnglishName: "French (France)"},
	{Name: "kl", EnglishName: "Kalaallisut (Greenland)"},
}
