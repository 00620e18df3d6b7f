package trip

// Columns of a trip record as they appear in the header of the city files.
// StartTime, StartStation, EndStation, Duration and UserType are present in every city;
// the rest depend on the source dataset.
const (
	StartTime      = "Start Time"
	EndTime        = "End Time"
	Duration       = "Trip Duration"
	StartStation   = "Start Station"
	EndStation     = "End Station"
	UserType       = "User Type"
	Gender         = "Gender"
	BirthYear      = "Birth Year"
	StartLatitude  = "Start Latitude"
	StartLongitude = "Start Longitude"
	EndLatitude    = "End Latitude"
	EndLongitude   = "End Longitude"
)

// Derived columns, computed once when the dataset is loaded
// + Month: month of the start timestamp, 1-12
// + DayOfWeek: full weekday name of the start timestamp, e.g. Monday
// + Hour: hour of the start timestamp, 0-23
// + StartEndLabel: start station and end station joined by the station separator
const (
	Month         = "month"
	DayOfWeek     = "day_of_week"
	Hour          = "hour"
	StartEndLabel = "start_end_label"
)

// RequiredColumns are the columns every city file must carry
var RequiredColumns = []string{StartTime, StartStation, EndStation, Duration, UserType}

// CoordinateColumns are needed to compute trip distances
var CoordinateColumns = []string{StartLatitude, StartLongitude, EndLatitude, EndLongitude}
