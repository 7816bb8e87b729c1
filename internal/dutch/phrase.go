package dutch

import "strconv"

var hourNames = [12]string{
	"twaalf", "een", "twee", "drie", "vier", "vijf",
	"zes", "zeven", "acht", "negen", "tien", "elf",
}

// HourName returns the Dutch number word for an hour on a 12-hour dial.
func HourName(h int) string {
	return hourNames[((h%12)+12)%12]
}

// Phrase converts hours and minutes to the idiomatic Dutch expression.
// Quarter and half-hour phrases are anchored to the next hour.
func Phrase(hours, minutes int) string {
	cur := HourName(hours)
	next := HourName(hours + 1)

	switch {
	case minutes == 0 && (hours == 0 || hours == 24):
		return "middernacht"
	case minutes == 0 && hours == 12:
		return "middag"
	case minutes == 0:
		return cur + " uur"
	case minutes == 15:
		return "kwart over " + cur
	case minutes == 30:
		return "half " + next
	case minutes == 45:
		return "kwart voor " + next
	case minutes == 5:
		return "vijf over " + cur
	case minutes == 10:
		return "tien over " + cur
	case minutes == 20:
		return "tien voor half " + next
	case minutes == 25:
		return "vijf voor half " + next
	case minutes == 35:
		return "vijf over half " + next
	case minutes == 40:
		return "tien over half " + next
	case minutes == 50:
		return "tien voor " + next
	case minutes == 55:
		return "vijf voor " + next
	}
	return cur + " uur " + strconv.Itoa(minutes)
}
