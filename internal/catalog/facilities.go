package catalog

import (
	"slices"

	"github.com/ougirez/solarscope/internal/domain"
)

var facilities = []domain.FacilityRecord{
	{ID: 1, Name: "Sarah Mitchell", JobTitle: "Facilities Director", Company: "Stellantis", Location: "Auburn Hills, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "s.mitchell@stellantis.com", Phone: "(248) 555-0142", FacilityType: "Manufacturing", EmployeeCount: "36K"},
	{ID: 2, Name: "David Chen", JobTitle: "Energy Manager", Company: "Ford Motor Company", Location: "Dearborn, Michigan", Emails: true, PhoneNumbers: false, Verified: true, Email: "dchen@ford.com", Phone: "", FacilityType: "Manufacturing", EmployeeCount: "177K"},
	{ID: 3, Name: "Maria Gonzalez", JobTitle: "VP of Operations", Company: "Meijer", Location: "Grand Rapids, Michigan", Emails: true, PhoneNumbers: true, Verified: false, Email: "mgonzalez@meijer.com", Phone: "(616) 555-0199", FacilityType: "Retail", EmployeeCount: "70K"},
	{ID: 4, Name: "James Whitaker", JobTitle: "Plant Manager", Company: "Whirlpool Corporation", Location: "Benton Harbor, Michigan", Emails: false, PhoneNumbers: true, Verified: true, Email: "", Phone: "(269) 555-0117", FacilityType: "Manufacturing", EmployeeCount: "59K"},
	{ID: 5, Name: "Priya Raman", JobTitle: "Sustainability Lead", Company: "Amazon", Location: "Romulus, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "praman@amazon.com", Phone: "(734) 555-0163", FacilityType: "Distribution Center", EmployeeCount: "1.5M"},
	{ID: 6, Name: "Robert Klein", JobTitle: "Facilities Manager", Company: "Kellogg Company", Location: "Battle Creek, Michigan", Emails: true, PhoneNumbers: false, Verified: false, Email: "rklein@kellogg.com", Phone: "", FacilityType: "Manufacturing", EmployeeCount: "23K"},
	{ID: 7, Name: "Angela Brooks", JobTitle: "Chief Operating Officer", Company: "Henry Ford Health", Location: "Detroit, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "abrooks@hfhs.org", Phone: "(313) 555-0108", FacilityType: "Healthcare", EmployeeCount: "33K"},
	{ID: 8, Name: "Thomas Reed", JobTitle: "Director of Real Estate", Company: "Dow Chemical", Location: "Midland, Michigan", Emails: false, PhoneNumbers: false, Verified: false, Email: "", Phone: "", FacilityType: "Manufacturing", EmployeeCount: "37K"},
	{ID: 9, Name: "Linda Park", JobTitle: "Energy Procurement Manager", Company: "Steelcase", Location: "Grand Rapids, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "lpark@steelcase.com", Phone: "(616) 555-0131", FacilityType: "Office Building", EmployeeCount: "11K"},
	{ID: 10, Name: "Kevin O'Brien", JobTitle: "Operations Manager", Company: "Lineage Logistics", Location: "Columbus, Ohio", Emails: true, PhoneNumbers: false, Verified: true, Email: "kobrien@lineagelogistics.com", Phone: "", FacilityType: "Cold Storage", EmployeeCount: "26K"},
	{ID: 11, Name: "Rachel Adams", JobTitle: "Facilities Coordinator", Company: "University of Michigan", Location: "Ann Arbor, Michigan", Emails: true, PhoneNumbers: true, Verified: false, Email: "radams@umich.edu", Phone: "(734) 555-0175", FacilityType: "Education", EmployeeCount: "50K"},
	{ID: 12, Name: "Michael Turner", JobTitle: "Director of Engineering", Company: "General Motors", Location: "Warren, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "mturner@gm.com", Phone: "(586) 555-0120", FacilityType: "Manufacturing", EmployeeCount: "163K"},
	{ID: 13, Name: "Susan Lee", JobTitle: "Property Manager", Company: "Bedrock Detroit", Location: "Detroit, Michigan", Emails: false, PhoneNumbers: true, Verified: false, Email: "", Phone: "(313) 555-0186", FacilityType: "Office Building", EmployeeCount: "1K"},
	{ID: 14, Name: "Daniel Foster", JobTitle: "Plant Engineer", Company: "Gentex Corporation", Location: "Zeeland, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "dfoster@gentex.com", Phone: "(616) 555-0154", FacilityType: "Manufacturing", EmployeeCount: "6K"},
	{ID: 15, Name: "Emily Carter", JobTitle: "General Manager", Company: "MGM Grand Detroit", Location: "Detroit, Michigan", Emails: true, PhoneNumbers: false, Verified: false, Email: "ecarter@mgmgranddetroit.com", Phone: "", FacilityType: "Hospitality", EmployeeCount: "3K"},
	{ID: 16, Name: "Brian Walsh", JobTitle: "Data Center Operations Lead", Company: "Switch", Location: "Grand Rapids, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "bwalsh@switch.com", Phone: "(616) 555-0102", FacilityType: "Data Center", EmployeeCount: "1K"},
	{ID: 17, Name: "Karen Hughes", JobTitle: "Warehouse Manager", Company: "Gordon Food Service", Location: "Indianapolis, Indiana", Emails: true, PhoneNumbers: true, Verified: false, Email: "khughes@gfs.com", Phone: "(616) 555-0148", FacilityType: "Warehouse", EmployeeCount: "22K"},
	{ID: 18, Name: "Steven Ward", JobTitle: "VP of Facilities", Company: "Stryker", Location: "Portage, Michigan", Emails: true, PhoneNumbers: true, Verified: true, Email: "sward@stryker.com", Phone: "(269) 555-0190", FacilityType: "Manufacturing", EmployeeCount: "52K"},
	{ID: 19, Name: "Nicole Baker", JobTitle: "Energy Analyst", Company: "Consumers Energy", Location: "Jackson, Michigan", Emails: true, PhoneNumbers: false, Verified: true, Email: "nbaker@cmsenergy.com", Phone: "", FacilityType: "Office Building", EmployeeCount: "8K"},
	{ID: 20, Name: "Gregory Hall", JobTitle: "Director of Operations", Company: "Spartan Motors", Location: "Charlotte, Michigan", Emails: false, PhoneNumbers: true, Verified: false, Email: "", Phone: "(517) 555-0133", FacilityType: "Manufacturing", EmployeeCount: "2K"},
}

// Facilities returns a fresh copy of the listing catalog.
func Facilities() []domain.FacilityRecord {
	return slices.Clone(facilities)
}
