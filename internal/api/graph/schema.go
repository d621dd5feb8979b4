package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	enum Role {
		USER
		COOK
		ADMIN
	}

	type Query {
		users(id: Int): [User!]!
		recipes(id: Int, userId: Int, categoryId: Int): [Recipe!]!
		ingredients(id: Int, recipeId: Int): [Ingredient!]!
		steps(id: Int, recipeId: Int): [Step!]!
		reviews(id: Int, recipeId: Int, userId: Int): [Review!]!
		categories(id: Int): [Category!]!
		me: User
	}

	type Mutation {
		createUser(input: NewUserInput!): AuthInfo!
		loginUser(input: LoginInput!): AuthInfo!
		updateUserName(newName: String!): User!
		updateUserEmail(newEmail: String!): User!
		updateUserPassword(password: String!, newPassword: String!): User!
		deleteUser(id: Int!): User!

		createRecipe(input: NewRecipeInput!): Recipe!
		updateRecipe(id: Int!, newData: UpdateRecipeInput!): Recipe!
		deleteRecipe(id: Int!): Recipe!

		createIngredient(recipeId: Int!, input: NewIngredientInput!): Ingredient!
		updateIngredient(id: Int!, newData: UpdateIngredientInput!): Ingredient!
		deleteIngredient(id: Int!): Ingredient!

		createStep(recipeId: Int!, description: String!): Step!
		updateStep(id: Int!, newDescription: String!): Step!
		deleteStep(id: Int!): Step!

		createReview(recipeId: Int!, input: NewReviewInput!): Review!
		updateReview(id: Int!, newData: UpdateReviewInput!): Review!
		deleteReview(id: Int!): Review!

		createCategory(name: String!): Category!
		updateCategory(id: Int!, newName: String!): Category!
		deleteCategory(id: Int!): Category!
	}

	type User {
		id: Int!
		name: String!
		email: String!
		role: Role!
		recipes: [Recipe!]!
		reviews: [Review!]!
		createdAt: Time!
		updatedAt: Time!
	}

	type AuthInfo {
		user: User!
		token: String!
	}

	type Recipe {
		id: Int!
		name: String!
		description: String!
		imageUrl: String
		userId: Int!
		user: User!
		categories: [Category!]!
		ingredients: [Ingredient!]!
		steps: [Step!]!
		reviews: [Review!]!
		createdAt: Time!
		updatedAt: Time!
	}

	type Ingredient {
		id: Int!
		description: String!
		quantity: Int!
		recipeId: Int!
		recipe: Recipe!
		createdAt: Time!
		updatedAt: Time!
	}

	type Step {
		id: Int!
		description: String!
		recipeId: Int!
		recipe: Recipe!
		createdAt: Time!
		updatedAt: Time!
	}

	type Review {
		id: Int!
		title: String!
		text: String!
		rating: Int!
		userId: Int!
		recipeId: Int!
		user: User!
		recipe: Recipe!
		createdAt: Time!
		updatedAt: Time!
	}

	type Category {
		id: Int!
		name: String!
		recipes: [Recipe!]!
		createdAt: Time!
		updatedAt: Time!
	}

	input NewUserInput {
		name: String!
		email: String!
		password: String!
	}

	input LoginInput {
		name: String
		email: String
		password: String!
	}

	input NewRecipeInput {
		name: String!
		description: String!
		categories: [Int!]!
		ingredients: [NewIngredientInput!]!
		steps: [String!]!
	}

	input UpdateRecipeInput {
		name: String
		description: String
	}

	input NewIngredientInput {
		description: String!
		quantity: Int!
	}

	input UpdateIngredientInput {
		description: String
		quantity: Int
	}

	input NewReviewInput {
		title: String!
		text: String!
		rating: Int!
	}

	input UpdateReviewInput {
		title: String
		text: String
		rating: Int
	}
`

func NewSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver)
}
