package repository

// sqliteSchema creates the embedded store layout. Entity columns hold the
// lowercase name so lookups are case-insensitive.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS clubs (
	entity    TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	squad_url TEXT NOT NULL DEFAULT '',
	logo      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS players (
	entity TEXT PRIMARY KEY,
	name   TEXT NOT NULL,
	club   TEXT NOT NULL DEFAULT '',
	photo  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS articles (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	kind   TEXT NOT NULL,
	entity TEXT NOT NULL,
	title  TEXT NOT NULL DEFAULT '',
	text   TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	date   TEXT NOT NULL DEFAULT '',
	url    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_articles_entity ON articles(kind, entity);

CREATE TABLE IF NOT EXISTS social_records (
	entity        TEXT PRIMARY KEY,
	mention_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS social_posts (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	entity    TEXT NOT NULL,
	content   TEXT NOT NULL DEFAULT '',
	posted_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_social_posts_entity ON social_posts(entity);

CREATE TABLE IF NOT EXISTS videos (
	video_id     TEXT PRIMARY KEY,
	title        TEXT NOT NULL DEFAULT '',
	transcript   TEXT NOT NULL DEFAULT '',
	thumbnail    TEXT NOT NULL DEFAULT '',
	publish_date TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS insights (
	kind         TEXT NOT NULL,
	entity       TEXT NOT NULL,
	impact_score REAL NOT NULL,
	run_id       TEXT NOT NULL DEFAULT '',
	doc          TEXT NOT NULL,
	updated_at   DATETIME NOT NULL,
	PRIMARY KEY (kind, entity)
);
`
