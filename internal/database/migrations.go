package database

// migration is one forward-only schema change.
type migration struct {
	version int
	name    string
	sql     string
}

// migrations are applied in slice order; versions must increase.
var migrations = []migration{
	{1, "festivals", migrationV1Festivals},
}

// migrationV1Festivals creates the festival table.
//
// A festival is keyed by Bengali month index (0 = Boishakh) and day. The
// CHECK on day only bounds it to 1-31; the per-month limit (30 for most
// months) is enforced by bangla.FestivalKey.Validate before insert.
const migrationV1Festivals = `
CREATE TABLE IF NOT EXISTS festivals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    month_index INTEGER NOT NULL CHECK (month_index BETWEEN 0 AND 11),
    day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 31),
    name TEXT NOT NULL CHECK (length(trim(name)) > 0),

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    -- One festival per day
    UNIQUE (month_index, day)
);

CREATE INDEX IF NOT EXISTS idx_festivals_month
    ON festivals(month_index);
`
