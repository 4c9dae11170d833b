package responses

import "time"

const iso8601Layout = time.RFC3339
