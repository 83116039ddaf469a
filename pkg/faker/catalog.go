package faker

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

type primitive struct {
	name string
	gen  func(f *Faker) (string, error)
	// values makes the primitive enumerable; gen is unused when set.
	values []string
}

func plain(fn func(f *gofakeit.Faker) string) func(*Faker) (string, error) {
	return func(f *Faker) (string, error) { return fn(f.fake), nil }
}

var (
	freeEmailDomains = []string{"gmail.com", "yahoo.fr", "hotmail.fr", "outlook.com", "laposte.net"}
	safeEmailDomains = []string{"example.com", "example.org", "example.net"}
)

// primitives is the curated catalog, in listing order.
var primitives = []primitive{
	// Names
	{name: "FirstName", gen: plain((*gofakeit.Faker).FirstName)},
	{name: "LastName", gen: plain((*gofakeit.Faker).LastName)},
	{name: "Name", gen: plain((*gofakeit.Faker).Name)},
	{name: "Title", gen: plain((*gofakeit.Faker).NamePrefix)},
	{name: "Username", gen: plain((*gofakeit.Faker).Username)},
	{name: "Password", gen: plain(func(f *gofakeit.Faker) string { return f.Password(true, true, true, false, false, 14) })},

	// Internet
	{name: "Email", gen: plain((*gofakeit.Faker).Email)},
	{name: "FreeEmail", gen: func(f *Faker) (string, error) {
		return emailLocalPart(f.fake.Username()) + "@" + f.pick(freeEmailDomains), nil
	}},
	{name: "SafeEmail", gen: func(f *Faker) (string, error) {
		return emailLocalPart(f.fake.Username()) + "@" + f.pick(safeEmailDomains), nil
	}},
	{name: "IPv4", gen: plain((*gofakeit.Faker).IPv4Address)},
	{name: "IPv6", gen: plain((*gofakeit.Faker).IPv6Address)},
	{name: "MACAddress", gen: plain((*gofakeit.Faker).MacAddress)},
	{name: "UserAgent", gen: plain((*gofakeit.Faker).UserAgent)},
	{name: "DomainName", gen: plain((*gofakeit.Faker).DomainName)},
	{name: "DomainSuffix", gen: plain((*gofakeit.Faker).DomainSuffix)},
	{name: "Url", gen: plain((*gofakeit.Faker).URL)},

	// Company
	{name: "CompanyName", gen: plain((*gofakeit.Faker).Company)},
	{name: "CompanySuffix", gen: plain((*gofakeit.Faker).CompanySuffix)},
	{name: "Buzzword", gen: plain((*gofakeit.Faker).BuzzWord)},
	{name: "JobTitle", gen: plain((*gofakeit.Faker).JobTitle)},

	// Address
	{name: "CityName", gen: plain((*gofakeit.Faker).City)},
	{name: "CountryName", gen: plain((*gofakeit.Faker).Country)},
	{name: "CountryCode", gen: plain((*gofakeit.Faker).CountryAbr)},
	{name: "StreetName", gen: plain((*gofakeit.Faker).StreetName)},
	{name: "StreetAddress", gen: plain((*gofakeit.Faker).Street)},
	{name: "ZipCode", gen: plain((*gofakeit.Faker).Zip)},
	{name: "StateName", gen: plain((*gofakeit.Faker).State)},
	{name: "StateAbbr", gen: plain((*gofakeit.Faker).StateAbr)},
	{name: "Latitude", gen: plain(func(f *gofakeit.Faker) string { return formatCoordinate(f.Latitude()) })},
	{name: "Longitude", gen: plain(func(f *gofakeit.Faker) string { return formatCoordinate(f.Longitude()) })},
	{name: "LicencePlate", gen: plain(func(f *gofakeit.Faker) string { return f.Regex(`[A-HJ-NP-TV-Z]{2}-[0-9]{3}-[A-HJ-NP-TV-Z]{2}`) })},

	// Phone
	{name: "PhoneNumber", gen: plain((*gofakeit.Faker).PhoneFormatted)},
	{name: "CellNumber", gen: plain((*gofakeit.Faker).Phone)},

	// Lorem
	{name: "Word", gen: plain((*gofakeit.Faker).Word)},
	{name: "Sentence", gen: plain(func(f *gofakeit.Faker) string { return f.Sentence(8) })},
	{name: "Paragraph", gen: plain(func(f *gofakeit.Faker) string { return f.Paragraph(1, 4, 8, " ") })},

	// Finance
	{name: "CurrencyCode", gen: plain((*gofakeit.Faker).CurrencyShort)},
	{name: "CurrencyName", gen: plain((*gofakeit.Faker).CurrencyLong)},
	{name: "CreditCardNumber", gen: plain(func(f *gofakeit.Faker) string { return f.CreditCardNumber(nil) })},

	// Files and colors
	{name: "FileExtension", gen: plain((*gofakeit.Faker).FileExtension)},
	{name: "MimeType", gen: plain((*gofakeit.Faker).FileMimeType)},
	{name: "Color", gen: plain((*gofakeit.Faker).Color)},
	{name: "HexColor", gen: plain((*gofakeit.Faker).HexColor)},

	// Identifiers and time
	{name: "Uuid", gen: (*Faker).uuid},
	{name: "Date", gen: func(f *Faker) (string, error) { return f.date(f.opts.DateLayout) }},
	{name: "Time", gen: func(f *Faker) (string, error) { return f.date(f.opts.TimeLayout) }},
	{name: "DateTime", gen: func(f *Faker) (string, error) { return f.date(f.opts.DateTimeLayout) }},

	// Enumerables
	{name: "Position", values: []string{"Trésorier", "VPO", "SecGe", "DirCo", "Info"}},
	{name: "Weekday", values: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
	{name: "Month", values: []string{"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December"}},
	{name: "HttpMethod", values: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}},
}

// emailLocalPart lower-cases a username and drops characters an address cannot carry unquoted.
func emailLocalPart(username string) string {
	local := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, username)
	if local == "" {
		return "user"
	}
	return local
}

var (
	primitiveByName = make(map[string]*primitive, len(primitives))
	// primitiveByFold hides gofakeit lookups that only differ in case.
	primitiveByFold = make(map[string]*primitive, len(primitives))
)

func init() {
	for i := range primitives {
		p := &primitives[i]
		primitiveByName[p.name] = p
		primitiveByFold[strings.ToLower(p.name)] = p
	}
}
