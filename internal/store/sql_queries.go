package store

const (
	createBookmark = `
		INSERT INTO bookmarks (
			id,
			parent_id,
			title,
			url
		) VALUES ($1, $2, $3, $4);`

	getBookmark = `
		SELECT
			id,
			parent_id,
			title,
			url
		FROM bookmarks
		WHERE id = $1 AND url IS NOT NULL;`

	getAllBookmarks = `
		SELECT
			id,
			parent_id,
			title,
			url
		FROM bookmarks
		WHERE url IS NOT NULL
		ORDER BY rowid;`

	findBookmarksByURL = `
		SELECT
			id,
			parent_id,
			title,
			url
		FROM bookmarks
		WHERE url = $1
		ORDER BY rowid;`

	updateBookmarkTitle = `
		UPDATE bookmarks
		SET title = $1
		WHERE id = $2;`

	deleteBookmark = `
		DELETE FROM bookmarks
		WHERE id = $1;`

	clearSnapshotEntries = `
		DELETE FROM snapshot_entries;`

	insertSnapshotEntry = `
		INSERT INTO snapshot_entries (
			position,
			title,
			url
		) VALUES ($1, $2, $3);`

	getSnapshotEntries = `
		SELECT
			title,
			url
		FROM snapshot_entries
		ORDER BY position;`

	upsertSyncState = `
		INSERT INTO sync_state (id, result, synced_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			result    = excluded.result,
			synced_at = excluded.synced_at;`

	getSyncState = `
		SELECT
			result,
			synced_at
		FROM sync_state
		WHERE id = 1;`
)
