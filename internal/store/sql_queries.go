package store

const (
	createUser = `INSERT INTO users (username, password, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password, name, token, created_at;`

	findUserByUsername = `SELECT user_id, username, password, name, token, created_at
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT user_id, username, password, name, token, created_at
    FROM users
    WHERE token = $1;`

	updateUser = `UPDATE users
    SET name = $1, password = $2
    WHERE user_id = $3
    RETURNING user_id, username, password, name, token, created_at;`

	setUserToken = `UPDATE users
    SET token = $1
    WHERE user_id = $2;`

	clearUserToken = `UPDATE users
    SET token = NULL
    WHERE user_id = $1;`

	createContact = `INSERT INTO contacts (user_id, first_name, last_name, email, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING contact_id, user_id, first_name, last_name, email, phone;`

	findContact = `SELECT contact_id, user_id, first_name, last_name, email, phone
    FROM contacts
    WHERE contact_id = $1 AND user_id = $2;`

	updateContact = `UPDATE contacts
    SET first_name = $1, last_name = $2, email = $3, phone = $4
    WHERE contact_id = $5 AND user_id = $6
    RETURNING contact_id, user_id, first_name, last_name, email, phone;`

	deleteContact = `DELETE FROM contacts
    WHERE contact_id = $1 AND user_id = $2;`

	createAddress = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING address_id, contact_id, street, city, province, country, postal_code;`

	findAddress = `SELECT address_id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE address_id = $1 AND contact_id = $2;`

	findAddressesByContact = `SELECT address_id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE contact_id = $1
    ORDER BY address_id;`

	updateAddress = `UPDATE addresses
    SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
    WHERE address_id = $6 AND contact_id = $7
    RETURNING address_id, contact_id, street, city, province, country, postal_code;`

	deleteAddress = `DELETE FROM addresses
    WHERE address_id = $1 AND contact_id = $2;`
)
