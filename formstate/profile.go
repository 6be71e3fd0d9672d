package formstate

// Profile - one persistent record per device. Only mutated through an
// explicit save; only cleared through an explicit reset.
type Profile struct {
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	DriverName    string `json:"driver_name"`
	VehicleNumber string `json:"vehicle_number"`
}

// Complete - a profile counts as complete once full name and address
// are both filled.
func (p Profile) Complete() bool {
	return p.FullName != "" && p.Address != ""
}

// Value resolves a field descriptor's profile binding key.
func (p Profile) Value(key string) string {
	switch key {
	case "fullName":
		return p.FullName
	case "address":
		return p.Address
	case "phone":
		return p.Phone
	case "email":
		return p.Email
	case "driverName":
		return p.DriverName
	case "vehicleNumber":
		return p.VehicleNumber
	default:
		return ""
	}
}

// Fields returns the profile as a flat field map, for hash-style storage.
func (p Profile) Fields() map[string]any {
	return map[string]any{
		"full_name":      p.FullName,
		"address":        p.Address,
		"phone":          p.Phone,
		"email":          p.Email,
		"driver_name":    p.DriverName,
		"vehicle_number": p.VehicleNumber,
	}
}

// ProfileFromFields rebuilds a profile from a stored field map.
func ProfileFromFields(fields map[string]string) Profile {
	return Profile{
		FullName:      fields["full_name"],
		Address:       fields["address"],
		Phone:         fields["phone"],
		Email:         fields["email"],
		DriverName:    fields["driver_name"],
		VehicleNumber: fields["vehicle_number"],
	}
}
