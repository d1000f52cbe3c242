package doctors

// Doctor is a static directory entry. The directory is not persisted; it is
// a fixed reference table used to resolve display info for an appointment's
// primaryPhysician string.
type Doctor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Directory lists the physicians patients can book with. Appointments join
// against this table by display name.
var Directory = []Doctor{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-ramirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

// FindByName resolves a directory entry by its display name.
func FindByName(name string) (Doctor, bool) {
	for _, d := range Directory {
		if d.Name == name {
			return d, true
		}
	}
	return Doctor{}, false
}
