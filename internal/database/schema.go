package database

const schema = `
-- Practice items with their spaced-repetition state. Dates are stored as
-- ISO-8601 YYYY-MM-DD text; history is a JSON array of {date, status}.
CREATE TABLE IF NOT EXISTS problems (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    link TEXT,
    approach TEXT,
    code TEXT,
    streak_level INTEGER DEFAULT 1,
    next_review DATE,
    last_marked DATE,
    history TEXT DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_problems_next_review ON problems(next_review);

-- Daily review ledger: one row per calendar date.
CREATE TABLE IF NOT EXISTS streak_tracker (
    date DATE PRIMARY KEY,
    problems_reviewed INTEGER DEFAULT 0
);
`
