package oasschema

import "strings"

// formatDescriptors maps OpenAPI string formats to catalog names.
var formatDescriptors = map[string]string{
	"email":         "Email",
	"idn-email":     "Email",
	"uuid":          "Uuid",
	"date":          "Date",
	"date-time":     "DateTime",
	"time":          "Time",
	"uri":           "Url",
	"url":           "Url",
	"iri":           "Url",
	"uri-reference": "Url",
	"ipv4":          "IPv4",
	"ipv6":          "IPv6",
	"hostname":      "DomainName",
	"idn-hostname":  "DomainName",
	"password":      "Password",
}

// nameHints maps normalized property names to catalog names.
var nameHints = map[string]string{
	"firstname":    "FirstName",
	"givenname":    "FirstName",
	"lastname":     "LastName",
	"surname":      "LastName",
	"familyname":   "LastName",
	"name":         "Name",
	"fullname":     "Name",
	"username":     "Username",
	"login":        "Username",
	"email":        "Email",
	"emailaddress": "Email",
	"phone":        "PhoneNumber",
	"phonenumber":  "PhoneNumber",
	"mobile":       "CellNumber",
	"city":         "CityName",
	"country":      "CountryName",
	"countrycode":  "CountryCode",
	"street":       "StreetName",
	"address":      "StreetAddress",
	"zip":          "ZipCode",
	"zipcode":      "ZipCode",
	"postalcode":   "ZipCode",
	"postcode":     "ZipCode",
	"state":        "StateName",
	"latitude":     "Latitude",
	"lat":          "Latitude",
	"longitude":    "Longitude",
	"lng":          "Longitude",
	"lon":          "Longitude",
	"company":      "CompanyName",
	"url":          "Url",
	"website":      "Url",
	"jobtitle":     "JobTitle",
	"currency":     "CurrencyCode",
	"color":        "Color",
	"colour":       "Color",
	"password":     "Password",
	"description":  "Sentence",
	"summary":      "Sentence",
	"bio":          "Paragraph",
	"ip":           "IPv4",
	"ipaddress":    "IPv4",
	"useragent":    "UserAgent",
	"plate":        "LicencePlate",
	"licenceplate": "LicencePlate",
	"licenseplate": "LicencePlate",
}

func normalizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
}
