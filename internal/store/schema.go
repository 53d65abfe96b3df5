package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id          TEXT PRIMARY KEY,
    date        TEXT NOT NULL,
    amount      REAL NOT NULL,
    category    TEXT NOT NULL,
    channel     TEXT NOT NULL,
    note        TEXT
);

CREATE TABLE IF NOT EXISTS squads (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS squad_members (
    squad_id    TEXT NOT NULL REFERENCES squads(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    name        TEXT NOT NULL,
    PRIMARY KEY (squad_id, name)
);

CREATE TABLE IF NOT EXISTS squad_txns (
    id          TEXT PRIMARY KEY,
    squad_id    TEXT NOT NULL REFERENCES squads(id) ON DELETE CASCADE,
    date        TEXT NOT NULL,
    description TEXT,
    amount      REAL NOT NULL,
    paid_by     TEXT NOT NULL,
    split_with  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_squad_txns_squad ON squad_txns(squad_id);
`
